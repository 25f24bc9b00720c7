package game

import (
	"sync"

	"github.com/verdict-game/verdict-backend/internal"
	"github.com/verdict-game/verdict-backend/internal/utils"
)

// =============================================================================
// ROOM REGISTRY
// =============================================================================

// Registry owns the process-wide code-to-room mapping and all gameplay
// operations on it. It is constructed in main and injected into the HTTP
// layer; there is no package-global room map.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*internal.Room
	codes *utils.CodeGenerator

	MaxPlayersPerRoom int
	MinPlayersToStart int
}

func NewRegistry(codes *utils.CodeGenerator) *Registry {
	if codes == nil {
		codes = utils.NewCodeGenerator()
	}
	return &Registry{
		rooms:             make(map[string]*internal.Room),
		codes:             codes,
		MaxPlayersPerRoom: internal.DefaultMaxPlayersPerRoom,
		MinPlayersToStart: internal.DefaultMinPlayersToStart,
	}
}

func (reg *Registry) Get(code string) (*internal.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, exists := reg.rooms[code]
	return room, exists
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// nextCode draws codes until one is free among currently-live rooms. Codes of
// destroyed rooms are reusable. Caller must hold reg.mu for writing so the
// returned code stays free until the room is inserted.
func (reg *Registry) nextCode() string {
	for {
		code := reg.codes.NewCode()
		if _, taken := reg.rooms[code]; !taken {
			return code
		}
	}
}

// RoomSummary is the public listing entry served by the HTTP surface.
type RoomSummary struct {
	Code    string             `json:"code"`
	Players int                `json:"players"`
	Phase   internal.GamePhase `json:"phase"`
}

func (reg *Registry) Summaries() []RoomSummary {
	reg.mu.RLock()
	rooms := make([]*internal.Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	reg.mu.RUnlock()

	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		room.Mu.RLock()
		summaries = append(summaries, RoomSummary{
			Code:    room.Code,
			Players: len(room.Players),
			Phase:   room.Game.Phase,
		})
		room.Mu.RUnlock()
	}
	return summaries
}
