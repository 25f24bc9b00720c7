package game

import (
	"log"

	"github.com/verdict-game/verdict-backend/internal"
)

// =============================================================================
// GAME PHASE CONTROLLER
// =============================================================================

// StartGame begins a new game session: host-only. Resets evidences, votes,
// scores, and every player's submission flag, then moves the room into the
// evidence phase and announces the crime and the accused.
func (reg *Registry) StartGame(client *internal.Client, code, crime, accusedID string) error {
	room, err := reg.hostRoom(client, code)
	if err != nil {
		return err
	}

	room.Mu.Lock()
	if len(room.Players) < reg.MinPlayersToStart {
		room.Mu.Unlock()
		return internal.ErrNotEnoughPlayers
	}

	room.Game.Phase = internal.PhaseEvidence
	room.Game.Crime = crime
	room.Game.AccusedID = accusedID
	room.Game.Evidences = make([]*internal.Evidence, 0)
	room.Game.Votes = make(map[string]string)
	room.Game.Scored = false
	for _, player := range room.Players {
		player.Score = 0
		player.EvidenceSubmitted = false
	}

	// The accused need not be a current roster member.
	var accused *internal.Player
	if p := room.PlayerByID(accusedID); p != nil {
		accused = p.ToPublicPlayer()
	}
	room.Mu.Unlock()

	log.Printf("[StartGame] Room %s: game started, crime=%q accused=%s", room.Code, crime, accusedID)

	broadcastToRoom(room, internal.Message[internal.GameStartedData]{
		Type: "gameStarted",
		Data: internal.GameStartedData{Crime: crime, Accused: accused},
	})
	return nil
}

// ChangePhase advances the room to an arbitrary host-supplied phase: names
// beyond the structural ones are passed through untouched. Entering trial
// attaches the evidence list; entering results applies scoring (once per
// session) and attaches both scores and evidences.
func (reg *Registry) ChangePhase(client *internal.Client, code string, phase internal.GamePhase, timer int) error {
	room, err := reg.hostRoom(client, code)
	if err != nil {
		return err
	}

	room.Mu.Lock()
	room.Game.Phase = phase

	data := internal.PhaseChangedData{Phase: phase, Timer: timer}
	switch phase {
	case internal.PhaseTrial:
		data.Evidences = room.EvidenceSnapshot()
	case internal.PhaseResults:
		if !room.Game.Scored {
			applyResultsScoring(room)
			room.Game.Scored = true
		}
		data.Evidences = room.EvidenceSnapshot()
		data.Scores = room.ScoreSnapshot()
	}
	room.Mu.Unlock()

	log.Printf("[ChangePhase] Room %s: phase -> %s (timer=%d)", room.Code, phase, timer)

	broadcastToRoom(room, internal.Message[internal.PhaseChangedData]{
		Type: "phaseChanged",
		Data: data,
	})
	return nil
}

// applyResultsScoring credits every submitter 3 points per vote their
// evidence collected, plus a 5 point bonus for each evidence tied at the
// maximum vote count when that maximum is above zero. Caller holds the room
// write lock.
func applyResultsScoring(room *internal.Room) {
	maxVotes := 0
	for _, evidence := range room.Game.Evidences {
		if evidence.Votes > maxVotes {
			maxVotes = evidence.Votes
		}
	}

	for _, evidence := range room.Game.Evidences {
		delta := evidence.Votes * internal.PointsPerVote
		if maxVotes > 0 && evidence.Votes == maxVotes {
			delta += internal.TopEvidenceBonus
		}
		if player := room.PlayerByID(evidence.PlayerID); player != nil {
			player.Score += delta
		}
	}
}

// hostRoom resolves the named room and authorizes the caller as its host.
func (reg *Registry) hostRoom(client *internal.Client, code string) (*internal.Room, error) {
	room, exists := reg.Get(code)
	if !exists {
		return nil, internal.ErrRoomNotFound
	}

	room.Mu.RLock()
	closed := room.Closed
	host := room.Host
	room.Mu.RUnlock()

	if closed {
		return nil, internal.ErrRoomNotFound
	}
	if host != client {
		return nil, internal.ErrNotAuthorized
	}
	return room, nil
}
