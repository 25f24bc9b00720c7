package internal

type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// Inbound payloads.

type JoinRoomData struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type StartGameData struct {
	RoomCode  string `json:"roomCode"`
	Crime     string `json:"crime"`
	AccusedID string `json:"accusedId"`
}

type ChangePhaseData struct {
	RoomCode string    `json:"roomCode"`
	Phase    GamePhase `json:"phase"`
	Timer    int       `json:"timer"`
}

type SubmitEvidenceData struct {
	RoomCode  string `json:"roomCode"`
	PlayerID  string `json:"playerId"`
	ImageData string `json:"imageData"`
	Caption   string `json:"caption"`
}

type VoteData struct {
	RoomCode   string `json:"roomCode"`
	PlayerID   string `json:"playerId"`
	EvidenceID string `json:"evidenceId"`
}

// Outbound payloads.

type RoomCreatedData struct {
	RoomCode string `json:"roomCode"`
}

type JoinedRoomData struct {
	RoomCode string    `json:"roomCode"`
	PlayerID string    `json:"playerId"`
	Phase    GamePhase `json:"phase"`
	Players  []*Player `json:"players"`
}

type PlayerJoinedData struct {
	Players []*Player `json:"players"`
}

type GameStartedData struct {
	Crime   string  `json:"crime"`
	Accused *Player `json:"accused,omitempty"`
}

type PhaseChangedData struct {
	Phase     GamePhase      `json:"phase"`
	Timer     int            `json:"timer"`
	Evidences []*Evidence    `json:"evidences,omitempty"`
	Scores    map[string]int `json:"scores,omitempty"`
}

type EvidenceSubmittedData struct {
	PlayerID string `json:"playerId"`
}

type RosterUpdateData struct {
	Players []*Player `json:"players"`
}

type VoteReceivedData struct {
	EvidenceID string `json:"evidenceId"`
	PlayerID   string `json:"playerId"`
}

type PlayerLeftData struct {
	Players []*Player `json:"players"`
}

type RoomClosedData struct {
	Reason string `json:"reason"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
