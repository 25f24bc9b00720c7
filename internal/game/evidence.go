package game

import (
	"log"

	"github.com/verdict-game/verdict-backend/internal"
	"github.com/verdict-game/verdict-backend/internal/utils"
)

// =============================================================================
// EVIDENCE & VOTING LEDGER
// =============================================================================

// SubmitEvidence records one evidence submission for a player: at most one
// per player per game session. The room hears a lightweight submitted event;
// only the host gets the full roster refresh, so submission progress shows up
// on the host's screen without leaking content to other players.
func (reg *Registry) SubmitEvidence(client *internal.Client, code, playerID, imageData, caption string) error {
	room, err := reg.liveRoom(code)
	if err != nil {
		return err
	}

	room.Mu.Lock()
	player := room.PlayerByID(playerID)
	if player == nil {
		room.Mu.Unlock()
		return internal.ErrPlayerNotFound
	}
	if player.Client != client {
		room.Mu.Unlock()
		return internal.ErrNotAuthorized
	}
	if player.EvidenceSubmitted {
		room.Mu.Unlock()
		return internal.ErrAlreadySubmitted
	}

	evidence := &internal.Evidence{
		ID:         utils.NewEvidenceID(),
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Payload:    imageData,
		Caption:    caption,
	}
	room.Game.Evidences = append(room.Game.Evidences, evidence)
	player.EvidenceSubmitted = true
	roster := room.RosterSnapshot()
	room.Mu.Unlock()

	log.Printf("[SubmitEvidence] Room %s: evidence %s from player %s (%s)",
		room.Code, evidence.ID, player.ID, player.Name)

	broadcastToRoom(room, internal.Message[internal.EvidenceSubmittedData]{
		Type: "evidenceSubmitted",
		Data: internal.EvidenceSubmittedData{PlayerID: player.ID},
	})
	sendToHost(room, internal.Message[internal.RosterUpdateData]{
		Type: "rosterUpdate",
		Data: internal.RosterUpdateData{Players: roster},
	})
	return nil
}

// CastVote records or migrates a player's single ballot. Self-votes are
// rejected with explicit feedback. Every return path keeps the vote counts
// consistent: one decrement paired with one increment when changing a vote,
// one bare increment on a first vote.
func (reg *Registry) CastVote(client *internal.Client, code, voterID, evidenceID string) error {
	room, err := reg.liveRoom(code)
	if err != nil {
		return err
	}

	room.Mu.Lock()
	voter := room.PlayerByID(voterID)
	if voter == nil {
		room.Mu.Unlock()
		return internal.ErrPlayerNotFound
	}
	if voter.Client != client {
		room.Mu.Unlock()
		return internal.ErrNotAuthorized
	}
	evidence := room.EvidenceByID(evidenceID)
	if evidence == nil {
		room.Mu.Unlock()
		return internal.ErrEvidenceNotFound
	}
	if evidence.PlayerID == voterID {
		room.Mu.Unlock()
		return internal.ErrSelfVote
	}

	if previousID, voted := room.Game.Votes[voterID]; voted {
		if previous := room.EvidenceByID(previousID); previous != nil && previous.Votes > 0 {
			previous.Votes--
		}
	}
	room.Game.Votes[voterID] = evidenceID
	evidence.Votes++
	room.Mu.Unlock()

	log.Printf("[CastVote] Room %s: player %s backs evidence %s (%d votes)",
		room.Code, voterID, evidenceID, evidence.Votes)

	broadcastToRoom(room, internal.Message[internal.VoteReceivedData]{
		Type: "voteReceived",
		Data: internal.VoteReceivedData{EvidenceID: evidenceID, PlayerID: voterID},
	})
	return nil
}

// liveRoom resolves a room code for a player-level action.
func (reg *Registry) liveRoom(code string) (*internal.Room, error) {
	room, exists := reg.Get(code)
	if !exists {
		return nil, internal.ErrRoomNotFound
	}
	room.Mu.RLock()
	closed := room.Closed
	room.Mu.RUnlock()
	if closed {
		return nil, internal.ErrRoomNotFound
	}
	return room, nil
}
