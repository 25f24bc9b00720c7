package game

import (
	"log"
	"slices"
	"time"

	"github.com/verdict-game/verdict-backend/internal"
	"github.com/verdict-game/verdict-backend/internal/utils"
)

// =============================================================================
// ROOM LIFECYCLE
// =============================================================================

// CreateRoom allocates a fresh lobby room under a newly drawn code. The
// creating connection becomes the room's host and gets the roomCreated ack;
// nobody else is notified.
func (reg *Registry) CreateRoom(host *internal.Client) (*internal.Room, error) {
	if reg.boundRoom(host) != nil {
		return nil, internal.ErrAlreadyInRoom
	}

	reg.mu.Lock()
	code := reg.nextCode()
	room := &internal.Room{
		Code:      code,
		Host:      host,
		Players:   make([]*internal.Player, 0),
		Game:      internal.NewGameState(),
		CreatedAt: time.Now(),
	}
	reg.rooms[code] = room
	reg.mu.Unlock()

	host.Room = room
	host.Player = nil

	log.Printf("[CreateRoom] Room %s created by %s. Total rooms: %d", code, host.ID, reg.Len())

	ack := internal.Message[internal.RoomCreatedData]{
		Type: "roomCreated",
		Data: internal.RoomCreatedData{RoomCode: code},
	}
	if err := host.SafeWriteJSON(ack); err != nil {
		log.Printf("[CreateRoom] Failed to ack host %s: %v", host.ID, err)
	}
	return room, nil
}

// JoinRoom appends a new player to a lobby room. Fails if the code is
// unknown, the game has started, the name is taken, or the room is full; the
// roster is untouched on every failure path.
func (reg *Registry) JoinRoom(client *internal.Client, code, name string) (*internal.Player, error) {
	if reg.boundRoom(client) != nil {
		return nil, internal.ErrAlreadyInRoom
	}

	room, exists := reg.Get(code)
	if !exists {
		return nil, internal.ErrRoomNotFound
	}

	room.Mu.Lock()
	if room.Closed {
		room.Mu.Unlock()
		return nil, internal.ErrRoomNotFound
	}
	if room.Game.Phase != internal.PhaseLobby {
		room.Mu.Unlock()
		return nil, internal.ErrGameAlreadyStarted
	}
	if room.PlayerByName(name) != nil {
		room.Mu.Unlock()
		return nil, internal.ErrNameTaken
	}
	if len(room.Players) >= reg.MaxPlayersPerRoom {
		room.Mu.Unlock()
		return nil, internal.ErrRoomFull
	}

	player := &internal.Player{
		ID:       utils.NewPlayerID(),
		Client:   client,
		Name:     name,
		JoinedAt: time.Now(),
	}
	room.Players = append(room.Players, player)

	roster := room.RosterSnapshot()
	phase := room.Game.Phase
	room.Mu.Unlock()

	client.Room = room
	client.Player = player

	log.Printf("[JoinRoom] Player %s (%s) joined room %s. Total players: %d",
		player.ID, player.Name, room.Code, len(roster))

	ack := internal.Message[internal.JoinedRoomData]{
		Type: "joinedRoom",
		Data: internal.JoinedRoomData{
			RoomCode: room.Code,
			PlayerID: player.ID,
			Phase:    phase,
			Players:  roster,
		},
	}
	if err := client.SafeWriteJSON(ack); err != nil {
		log.Printf("[JoinRoom] Failed to ack player %s (%s): %v", player.ID, player.Name, err)
	}

	broadcastToRoom(room, internal.Message[internal.PlayerJoinedData]{
		Type: "playerJoined",
		Data: internal.PlayerJoinedData{Players: roster},
	})
	return player, nil
}

// Disconnect handles a dropped connection. A host drop tears the whole room
// down; a player drop removes that player (by connection identity, not name)
// and refreshes the roster for everyone left.
func (reg *Registry) Disconnect(client *internal.Client) {
	room := reg.boundRoom(client)
	client.Room = nil
	client.Player = nil
	if room == nil {
		return
	}

	if room.Host == client {
		log.Printf("[Disconnect] Host %s left, destroying room %s", client.ID, room.Code)
		reg.destroyRoom(room, "host left the room")
		return
	}

	room.Mu.Lock()
	before := len(room.Players)
	room.Players = slices.DeleteFunc(room.Players, func(p *internal.Player) bool {
		return p.Client == client
	})
	removed := before != len(room.Players)
	roster := room.RosterSnapshot()
	room.Mu.Unlock()

	if !removed {
		return
	}

	log.Printf("[Disconnect] Player connection %s left room %s. Players remaining: %d",
		client.ID, room.Code, len(roster))

	broadcastToRoom(room, internal.Message[internal.PlayerLeftData]{
		Type: "playerLeft",
		Data: internal.PlayerLeftData{Players: roster},
	})
}

// boundRoom returns the room the client is bound to, or nil if unbound or the
// room has since been destroyed. Binding pointers are only ever written from
// the client's own read-loop goroutine.
func (reg *Registry) boundRoom(client *internal.Client) *internal.Room {
	room := client.Room
	if room == nil {
		return nil
	}
	room.Mu.RLock()
	closed := room.Closed
	room.Mu.RUnlock()
	if closed {
		return nil
	}
	return room
}

// destroyRoom removes the room from the registry, marks it closed so stale
// handles refuse further mutations, and tells everyone still connected.
func (reg *Registry) destroyRoom(room *internal.Room, reason string) {
	reg.mu.Lock()
	delete(reg.rooms, room.Code)
	reg.mu.Unlock()

	room.Mu.Lock()
	room.Closed = true
	clients := room.ClientSnapshot()
	room.Mu.Unlock()

	notice := internal.Message[internal.RoomClosedData]{
		Type: "roomClosed",
		Data: internal.RoomClosedData{Reason: reason},
	}
	for _, c := range clients {
		if err := c.SafeWriteJSON(notice); err != nil {
			log.Printf("[destroyRoom] Failed to notify %s about room %s: %v", c.ID, room.Code, err)
		}
	}

	log.Printf("[destroyRoom] Room %s destroyed (%s). Total rooms: %d", room.Code, reason, reg.Len())
}

// CloseAllRooms tears down every live room, used during graceful shutdown.
func (reg *Registry) CloseAllRooms(reason string) {
	reg.mu.RLock()
	rooms := make([]*internal.Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	reg.mu.RUnlock()

	for _, room := range rooms {
		reg.destroyRoom(room, reason)

		room.Mu.RLock()
		clients := room.ClientSnapshot()
		room.Mu.RUnlock()
		for _, c := range clients {
			if c.Conn != nil {
				if err := c.Conn.Close(); err != nil {
					log.Printf("[CloseAllRooms] Error closing connection %s: %v", c.ID, err)
				}
			}
		}
	}
}
