package game_test

import (
	"fmt"
	"testing"

	"github.com/verdict-game/verdict-backend/internal"
	"github.com/verdict-game/verdict-backend/internal/game"
)

// newTestClient builds a connection-less client. SafeWriteJSON treats a nil
// connection as a no-op, so game logic can run against fixtures without a
// real WebSocket on either end.
func newTestClient(id string) *internal.Client {
	return internal.NewClient(nil, id)
}

// setupRoom creates a registry-backed room with a host and n joined players
// named player-0..player-n-1.
func setupRoom(t *testing.T, reg *game.Registry, n int) (*internal.Room, *internal.Client, []*internal.Client, []*internal.Player) {
	t.Helper()

	host := newTestClient("host")
	room, err := reg.CreateRoom(host)
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	clients := make([]*internal.Client, 0, n)
	players := make([]*internal.Player, 0, n)
	for i := 0; i < n; i++ {
		client := newTestClient(fmt.Sprintf("conn-%d", i))
		player, err := reg.JoinRoom(client, room.Code, fmt.Sprintf("player-%d", i))
		if err != nil {
			t.Fatalf("JoinRoom for player-%d failed: %v", i, err)
		}
		clients = append(clients, client)
		players = append(players, player)
	}
	return room, host, clients, players
}

// startGame moves a lobby room into the evidence phase with a fixed crime.
func startGame(t *testing.T, reg *game.Registry, room *internal.Room, host *internal.Client, accusedID string) {
	t.Helper()
	if err := reg.StartGame(host, room.Code, "stole the last slice of pizza", accusedID); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
}

// submitAll submits one evidence per player and returns the evidences in
// submission order.
func submitAll(t *testing.T, reg *game.Registry, room *internal.Room, clients []*internal.Client, players []*internal.Player) []*internal.Evidence {
	t.Helper()
	for i, player := range players {
		err := reg.SubmitEvidence(clients[i], room.Code, player.ID, "data:image/png;base64,AAAA", fmt.Sprintf("exhibit %d", i))
		if err != nil {
			t.Fatalf("SubmitEvidence for %s failed: %v", player.Name, err)
		}
	}
	return room.Game.Evidences
}

// totalEvidenceVotes sums the per-evidence counters, the left side of the
// ballots-equal-counters consistency check.
func totalEvidenceVotes(room *internal.Room) int {
	sum := 0
	for _, evidence := range room.Game.Evidences {
		sum += evidence.Votes
	}
	return sum
}
