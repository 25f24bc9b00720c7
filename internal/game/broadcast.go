package game

import (
	"errors"
	"log"

	"github.com/verdict-game/verdict-backend/internal"
)

// =============================================================================
// BROADCAST HELPERS
// =============================================================================

// broadcastToRoom pushes one message to every connection in the room, host
// included. The client list is snapshotted under the room lock and writes
// happen outside it; delivery is best-effort.
func broadcastToRoom(room *internal.Room, v any) {
	room.Mu.RLock()
	clients := room.ClientSnapshot()
	room.Mu.RUnlock()

	for _, c := range clients {
		if err := c.SafeWriteJSON(v); err != nil {
			log.Printf("[broadcastToRoom] Write to %s failed in room %s: %v", c.ID, room.Code, err)
		}
	}
}

// sendToHost delivers a message to the room's host only, e.g. the roster
// refresh after an evidence submission that other players must not see.
func sendToHost(room *internal.Room, v any) {
	room.Mu.RLock()
	host := room.Host
	room.Mu.RUnlock()

	if err := host.SafeWriteJSON(v); err != nil {
		log.Printf("[sendToHost] Write to host failed in room %s: %v", room.Code, err)
	}
}

// sendError converts a failure into a structured error event for the
// originating connection. Unexpected error values are masked behind the
// generic internal code.
func sendError(client *internal.Client, err error) {
	var gameErr *internal.GameError
	if !errors.As(err, &gameErr) {
		log.Printf("[sendError] Unexpected error for %s: %v", client.ID, err)
		gameErr = internal.ErrInternal
	}

	msg := internal.Message[internal.ErrorData]{
		Type: "error",
		Data: internal.ErrorData{Code: gameErr.Code, Message: gameErr.Message},
	}
	if writeErr := client.SafeWriteJSON(msg); writeErr != nil {
		log.Printf("[sendError] Failed to deliver %s to %s: %v", gameErr.Code, client.ID, writeErr)
	}
}
