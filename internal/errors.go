package internal

// GameError is a recoverable validation failure reported back to the
// originating connection as a structured error event. None of these corrupt
// shared room state: handlers validate fully before mutating.
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

var (
	ErrRoomNotFound       = &GameError{Code: "ROOM_NOT_FOUND", Message: "room not found"}
	ErrGameAlreadyStarted = &GameError{Code: "GAME_ALREADY_STARTED", Message: "game already started"}
	ErrNameTaken          = &GameError{Code: "NAME_TAKEN", Message: "that name is already taken in this room"}
	ErrNotAuthorized      = &GameError{Code: "NOT_AUTHORIZED", Message: "only the host can do that"}
	ErrNotEnoughPlayers   = &GameError{Code: "NOT_ENOUGH_PLAYERS", Message: "not enough players to start the game"}
	ErrPlayerNotFound     = &GameError{Code: "PLAYER_NOT_FOUND", Message: "player not found in this room"}
	ErrAlreadySubmitted   = &GameError{Code: "ALREADY_SUBMITTED", Message: "evidence already submitted for this game"}
	ErrSelfVote           = &GameError{Code: "SELF_VOTE", Message: "you cannot vote for your own evidence"}
	ErrEvidenceNotFound   = &GameError{Code: "EVIDENCE_NOT_FOUND", Message: "evidence not found in this room"}
	ErrRoomFull           = &GameError{Code: "ROOM_FULL", Message: "room is full"}
	ErrAlreadyInRoom      = &GameError{Code: "ALREADY_IN_ROOM", Message: "connection is already bound to a room"}
	ErrInvalidPayload     = &GameError{Code: "INVALID_PAYLOAD", Message: "malformed message payload"}
	ErrInternal           = &GameError{Code: "INTERNAL_ERROR", Message: "internal server error"}
)
