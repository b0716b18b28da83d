package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoSuchRoom           GameError = "no such room"
	ErrRoomFull             GameError = "room is full"
	ErrPlayerExists         GameError = "player is already in the room"
	ErrUnregisteredUser     GameError = "unregistered user"
	ErrPlayerNotInRoom      GameError = "player is not in a room"
	ErrNotHost              GameError = "player does not host a room"
	ErrUnknownSystem        GameError = "unknown winning system"
	ErrInvalidCustomSystem  GameError = "invalid custom winning system"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilRoomRepo          GameError = "room repository cannot be nil"
	ErrNilPlayerRepo        GameError = "player repository cannot be nil"
	ErrNilActionLogRepo     GameError = "action log repository cannot be nil"
	ErrNilPasscodeSource    GameError = "passcode source cannot be nil"
)
