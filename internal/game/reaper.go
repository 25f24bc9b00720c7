package game

import (
	"context"
	"log"
	"time"

	"github.com/verdict-game/verdict-backend/internal"
)

// RunReaper sweeps the registry on a fixed interval until the context is
// cancelled, removing rooms whose roster has stayed empty. This is coarse GC:
// a room can sit empty for up to one interval before reclamation.
func (reg *Registry) RunReaper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[RunReaper] Sweeping idle rooms every %v", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[RunReaper] Stopped")
			return
		case <-ticker.C:
			reg.ReapIdleRooms(interval)
		}
	}
}

// ReapIdleRooms destroys every room with an empty roster that is at least
// minAge old. The age check keeps a just-created room alive under its host
// until the first join window has passed; the emptiness check means the
// sweep can never race with in-progress gameplay, since an empty room has no
// players left to generate events.
func (reg *Registry) ReapIdleRooms(minAge time.Duration) int {
	reg.mu.RLock()
	rooms := make([]*internal.Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	reg.mu.RUnlock()

	reaped := 0
	for _, room := range rooms {
		room.Mu.RLock()
		idle := !room.Closed && len(room.Players) == 0 && time.Since(room.CreatedAt) >= minAge
		room.Mu.RUnlock()

		if idle {
			log.Printf("[ReapIdleRooms] Room %s has been empty past one sweep interval", room.Code)
			reg.destroyRoom(room, "room closed for inactivity")
			reaped++
		}
	}
	return reaped
}
