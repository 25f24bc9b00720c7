package game

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/verdict-game/verdict-backend/internal"
)

// =============================================================================
// WEBSOCKET CONNECTION HANDLING
// =============================================================================

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the HTTP connection and starts the per-connection
// message loop. A fresh connection is unbound: its first createRoom or
// joinRoom message attaches it to a room.
func (reg *Registry) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade failed: ", err)
		return
	}

	client := internal.NewClient(conn, r.RemoteAddr)
	go reg.handleMessages(client)
}

// handleMessages reads and dispatches events for one connection. On any read
// error the connection is considered dropped and cleanup runs per the
// session bridge rules: host drop destroys the room, player drop removes the
// player.
func (reg *Registry) handleMessages(client *internal.Client) {
	defer func() {
		client.Conn.Close()
		reg.Disconnect(client)
	}()
	log.Printf("Started message handler for connection: %s", client.ID)

	for {
		_, rawMessage, err := client.Conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Read error on connection %s: %v", client.ID, err)
			}
			break
		}

		var baseMsg internal.Message[json.RawMessage]
		if err := json.Unmarshal(rawMessage, &baseMsg); err != nil {
			log.Printf("Failed to parse base message from %s: %v", client.ID, err)
			sendError(client, internal.ErrInvalidPayload)
			continue
		}

		reg.dispatch(client, baseMsg)
	}
}

// dispatch routes one inbound event. A panicking handler must not take the
// connection loop (or the process) down with it, so faults are converted to a
// generic error reply.
func (reg *Registry) dispatch(client *internal.Client, msg internal.Message[json.RawMessage]) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic handling %q from %s: %v", msg.Type, client.ID, r)
			sendError(client, internal.ErrInternal)
		}
	}()

	var err error
	switch msg.Type {
	case "createRoom":
		_, err = reg.CreateRoom(client)

	case "joinRoom":
		var data internal.JoinRoomData
		if err = json.Unmarshal(msg.Data, &data); err != nil {
			err = internal.ErrInvalidPayload
			break
		}
		_, err = reg.JoinRoom(client, data.RoomCode, data.PlayerName)

	case "startGame":
		var data internal.StartGameData
		if err = json.Unmarshal(msg.Data, &data); err != nil {
			err = internal.ErrInvalidPayload
			break
		}
		err = reg.StartGame(client, data.RoomCode, data.Crime, data.AccusedID)

	case "changePhase":
		var data internal.ChangePhaseData
		if err = json.Unmarshal(msg.Data, &data); err != nil {
			err = internal.ErrInvalidPayload
			break
		}
		err = reg.ChangePhase(client, data.RoomCode, data.Phase, data.Timer)

	case "submitEvidence":
		var data internal.SubmitEvidenceData
		if err = json.Unmarshal(msg.Data, &data); err != nil {
			err = internal.ErrInvalidPayload
			break
		}
		err = reg.SubmitEvidence(client, data.RoomCode, data.PlayerID, data.ImageData, data.Caption)

	case "vote":
		var data internal.VoteData
		if err = json.Unmarshal(msg.Data, &data); err != nil {
			err = internal.ErrInvalidPayload
			break
		}
		err = reg.CastVote(client, data.RoomCode, data.PlayerID, data.EvidenceID)

	default:
		log.Printf("Unknown message type %q from %s", msg.Type, client.ID)
		err = &internal.GameError{Code: "UNKNOWN_TYPE", Message: "unknown message type: " + msg.Type}
	}

	if err != nil {
		sendError(client, err)
	}
}
