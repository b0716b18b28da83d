package game

import "context"

// Service defines the interface for room and settlement operations
type Service interface {
	// RegisterUser registers a chat user, or refreshes their profile
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// CreateRoom creates a room with a fresh passcode and the caller as host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a registered player to an existing room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LeaveRoom removes a player from their room; a departing host
	// dissolves the room
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// GetRoomPlayers returns the standings of the caller's room
	GetRoomPlayers(ctx context.Context, input *GetRoomPlayersInput) (*GetRoomPlayersOutput, error)

	// GetActionHistory returns the caller's room action history
	GetActionHistory(ctx context.Context, input *GetActionHistoryInput) (*GetActionHistoryOutput, error)

	// SetGameMode switches a host's room between shooter and
	// non-shooter settlement
	SetGameMode(ctx context.Context, input *SetGameModeInput) (*SetGameModeOutput, error)

	// SetWinningSystem selects a preset winning system for a host's room
	SetWinningSystem(ctx context.Context, input *SetWinningSystemInput) (*SetWinningSystemOutput, error)

	// SetCustomWinningSystem installs a custom winning system parsed
	// from ten decimal amounts
	SetCustomWinningSystem(ctx context.Context, input *SetCustomWinningSystemInput) (*SetCustomWinningSystemOutput, error)

	// RecordWin settles a scoring event against the winner's room and
	// appends it to the action history
	RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error)

	// UndoWin reverses a previously recorded scoring event and strikes
	// its history entry
	UndoWin(ctx context.Context, input *UndoWinInput) (*UndoWinOutput, error)
}
