package game_test

import (
	"errors"
	"testing"

	"github.com/verdict-game/verdict-backend/internal"
	"github.com/verdict-game/verdict-backend/internal/game"
)

// TestStartGameRequiresHost verifies that a non-host connection can never
// move a room out of the lobby.
func TestStartGameRequiresHost(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, _, clients, _ := setupRoom(t, reg, 2)

	err := reg.StartGame(clients[0], room.Code, "crime", "")
	if !errors.Is(err, internal.ErrNotAuthorized) {
		t.Fatalf("Non-host StartGame error = %v, want ErrNotAuthorized", err)
	}
	if room.Game.Phase != internal.PhaseLobby {
		t.Errorf("Phase = %q after rejected start, want %q", room.Game.Phase, internal.PhaseLobby)
	}
}

// TestStartGameNotEnoughPlayers verifies the configurable minimum-roster
// guard, which defaults to two players.
func TestStartGameNotEnoughPlayers(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, _, _ := setupRoom(t, reg, 1)

	err := reg.StartGame(host, room.Code, "crime", "")
	if !errors.Is(err, internal.ErrNotEnoughPlayers) {
		t.Fatalf("Understaffed StartGame error = %v, want ErrNotEnoughPlayers", err)
	}
	if room.Game.Phase != internal.PhaseLobby {
		t.Errorf("Phase = %q after rejected start, want %q", room.Game.Phase, internal.PhaseLobby)
	}

	reg.MinPlayersToStart = 1
	if err := reg.StartGame(host, room.Code, "crime", ""); err != nil {
		t.Errorf("StartGame with lowered minimum failed: %v", err)
	}
}

// TestStartGameResetsSession verifies that starting a new game wipes the
// previous session: evidences, ballots, scores, and submission flags all
// reset, and the new crime and accused are recorded.
func TestStartGameResetsSession(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, clients, players := setupRoom(t, reg, 3)
	startGame(t, reg, room, host, players[0].ID)
	evidences := submitAll(t, reg, room, clients, players)

	if err := reg.CastVote(clients[1], room.Code, players[1].ID, evidences[0].ID); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	players[0].Score = 42

	if err := reg.StartGame(host, room.Code, "a second crime", players[1].ID); err != nil {
		t.Fatalf("Second StartGame failed: %v", err)
	}

	if room.Game.Phase != internal.PhaseEvidence {
		t.Errorf("Phase = %q, want %q", room.Game.Phase, internal.PhaseEvidence)
	}
	if room.Game.Crime != "a second crime" || room.Game.AccusedID != players[1].ID {
		t.Errorf("Crime/accused not updated: %q / %q", room.Game.Crime, room.Game.AccusedID)
	}
	if len(room.Game.Evidences) != 0 || len(room.Game.Votes) != 0 {
		t.Errorf("Session not cleared: %d evidences, %d ballots", len(room.Game.Evidences), len(room.Game.Votes))
	}
	for _, player := range room.Players {
		if player.Score != 0 || player.EvidenceSubmitted {
			t.Errorf("Player %s not reset: score=%d submitted=%v", player.Name, player.Score, player.EvidenceSubmitted)
		}
	}
}

// TestStartGameAcceptsAbsentAccused verifies that the accused id is not
// validated against roster membership.
func TestStartGameAcceptsAbsentAccused(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, _, _ := setupRoom(t, reg, 2)

	if err := reg.StartGame(host, room.Code, "crime", "nobody-here"); err != nil {
		t.Fatalf("StartGame with absent accused failed: %v", err)
	}
	if room.Game.AccusedID != "nobody-here" {
		t.Errorf("AccusedID = %q, want %q", room.Game.AccusedID, "nobody-here")
	}
}

// TestChangePhasePassesThroughHostPhases verifies that phase names beyond
// the structural ones are accepted and applied untouched.
func TestChangePhasePassesThroughHostPhases(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, _, _ := setupRoom(t, reg, 2)
	startGame(t, reg, room, host, "")

	if err := reg.ChangePhase(host, room.Code, "closing-arguments", 30); err != nil {
		t.Fatalf("ChangePhase failed: %v", err)
	}
	if room.Game.Phase != "closing-arguments" {
		t.Errorf("Phase = %q, want %q", room.Game.Phase, "closing-arguments")
	}

	if err := reg.ChangePhase(room.Players[0].Client, room.Code, internal.PhaseTrial, 0); !errors.Is(err, internal.ErrNotAuthorized) {
		t.Fatalf("Non-host ChangePhase error = %v, want ErrNotAuthorized", err)
	}
}

// TestResultsScoringWithTieBonus verifies the scoring rule on entry into
// results: submitters earn votes*3, and every evidence tied at the maximum
// vote count (when positive) earns its submitter a 5 point bonus. With vote
// counts [2, 5, 5] the submitters gain [6, 20, 20].
func TestResultsScoringWithTieBonus(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, clients, players := setupRoom(t, reg, 3)
	startGame(t, reg, room, host, "")
	evidences := submitAll(t, reg, room, clients, players)

	room.Game.Evidences[0].Votes = 2
	room.Game.Evidences[1].Votes = 5
	room.Game.Evidences[2].Votes = 5

	if err := reg.ChangePhase(host, room.Code, internal.PhaseResults, 0); err != nil {
		t.Fatalf("ChangePhase to results failed: %v", err)
	}

	want := []int{6, 20, 20}
	for i, evidence := range evidences {
		player := room.PlayerByID(evidence.PlayerID)
		if player.Score != want[i] {
			t.Errorf("Submitter of evidence %d scored %d, want %d", i, player.Score, want[i])
		}
	}
}

// TestResultsScoringNoVotesNoBonus verifies that with zero votes everywhere
// nobody scores: the tie bonus requires a positive maximum.
func TestResultsScoringNoVotesNoBonus(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, clients, players := setupRoom(t, reg, 2)
	startGame(t, reg, room, host, "")
	submitAll(t, reg, room, clients, players)

	if err := reg.ChangePhase(host, room.Code, internal.PhaseResults, 0); err != nil {
		t.Fatalf("ChangePhase to results failed: %v", err)
	}
	for _, player := range room.Players {
		if player.Score != 0 {
			t.Errorf("Player %s scored %d with no votes cast, want 0", player.Name, player.Score)
		}
	}
}

// TestResultsScoringAppliedOnce verifies the re-entry guard: a host
// re-sending the results transition must not re-apply multipliers or
// bonuses on top of already-updated scores.
func TestResultsScoringAppliedOnce(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, clients, players := setupRoom(t, reg, 2)
	startGame(t, reg, room, host, "")
	submitAll(t, reg, room, clients, players)

	room.Game.Evidences[0].Votes = 1

	if err := reg.ChangePhase(host, room.Code, internal.PhaseResults, 0); err != nil {
		t.Fatalf("First results transition failed: %v", err)
	}
	first := room.PlayerByID(players[0].ID).Score

	if err := reg.ChangePhase(host, room.Code, internal.PhaseResults, 0); err != nil {
		t.Fatalf("Second results transition failed: %v", err)
	}
	second := room.PlayerByID(players[0].ID).Score

	if first != second {
		t.Errorf("Score changed on results re-entry: %d -> %d", first, second)
	}

	// A fresh game re-arms the guard.
	startGame(t, reg, room, host, "")
	if room.Game.Scored {
		t.Error("Scored guard not reset by a new game")
	}
}

// TestChangePhaseNonResultsIdempotent verifies that repeating a non-results
// transition does not touch scores.
func TestChangePhaseNonResultsIdempotent(t *testing.T) {
	reg := game.NewRegistry(nil)
	room, host, clients, players := setupRoom(t, reg, 2)
	startGame(t, reg, room, host, "")
	submitAll(t, reg, room, clients, players)

	for i := 0; i < 2; i++ {
		if err := reg.ChangePhase(host, room.Code, internal.PhaseTrial, 60); err != nil {
			t.Fatalf("ChangePhase to trial (%d) failed: %v", i, err)
		}
	}
	for _, player := range room.Players {
		if player.Score != 0 {
			t.Errorf("Player %s score mutated by trial transitions: %d", player.Name, player.Score)
		}
	}
	if room.Game.Phase != internal.PhaseTrial {
		t.Errorf("Phase = %q, want %q", room.Game.Phase, internal.PhaseTrial)
	}
}
