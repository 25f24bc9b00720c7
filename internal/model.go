package internal

import (
	"sync"
	"time"
)

const (
	RoomCodeLength   = 4
	RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	DefaultMaxPlayersPerRoom = 12
	DefaultMinPlayersToStart = 2
	DefaultReaperInterval    = 5 * time.Minute

	// Scoring applied when a game enters the results phase.
	PointsPerVote    = 3
	TopEvidenceBonus = 5
)

// GamePhase names a stage of the game session. Only the constants below are
// structural; the host may push any phase name after evidence and the server
// passes it through untouched.
type GamePhase string

const (
	PhaseLobby    GamePhase = "lobby"
	PhaseEvidence GamePhase = "evidence"
	PhaseTrial    GamePhase = "trial"
	PhaseResults  GamePhase = "results"
)

type Response struct {
	StatusCode    int   `json:"status_code"`
	RespStartTime int64 `json:"resp_time_start_ms"`
	RespEndTime   int64 `json:"resp_time_end_ms"`
	NetRespTime   int64 `json:"net_resp_time_ms"`
	Data          any   `json:"data"`
}

type Room struct {
	Code    string    `json:"code"`
	Host    *Client   `json:"-"`
	Players []*Player `json:"players"` // join order
	Game    GameState `json:"game"`

	CreatedAt time.Time `json:"createdAt"`

	// Set by the registry when the room is torn down, so a handler that
	// grabbed the pointer before removal refuses to mutate it.
	Closed bool `json:"-"`

	// Concurrency control
	Mu sync.RWMutex `json:"-"`
}

type Player struct {
	ID     string  `json:"id"`
	Client *Client `json:"-"` // Avoid circular reference in JSON
	Name   string  `json:"name"`
	Score  int     `json:"score"`

	// Game state
	EvidenceSubmitted bool      `json:"evidenceSubmitted"`
	JoinedAt          time.Time `json:"joinedAt"`
}

type GameState struct {
	Phase     GamePhase `json:"phase"`
	Crime     string    `json:"crime"`
	AccusedID string    `json:"accusedId"`

	Evidences []*Evidence `json:"evidences"` // submission order

	// Votes maps a voter's player id to the evidence id they currently
	// back. At most one entry per player; changing a vote migrates it.
	Votes map[string]string `json:"-"`

	// Scored guards the results scoring pass: it runs exactly once per
	// game session even if the host re-sends the results transition.
	Scored bool `json:"-"`
}

type Evidence struct {
	ID         string `json:"id"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"` // captured at submission time
	Payload    string `json:"imageData"`
	Caption    string `json:"caption"`
	Votes      int    `json:"votes"`
}

func NewGameState() GameState {
	return GameState{
		Phase:     PhaseLobby,
		Evidences: make([]*Evidence, 0),
		Votes:     make(map[string]string),
	}
}
