package game

import (
	"github.com/KirkDiggler/mahjong-tally/internal/common/clock"
	"github.com/KirkDiggler/mahjong-tally/internal/common/uuid"
	"github.com/KirkDiggler/mahjong-tally/internal/models"
	"github.com/KirkDiggler/mahjong-tally/internal/passcode"
	actionlogRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/actionlog"
	playerRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/room"
	"github.com/KirkDiggler/mahjong-tally/internal/tally"
)

// Config holds the dependencies and settings for the game service
type Config struct {
	// RoomRepo persists rooms
	RoomRepo roomRepo.Repository

	// PlayerRepo persists players and tallies
	PlayerRepo playerRepo.Repository

	// ActionLogRepo persists room action histories
	ActionLogRepo actionlogRepo.Repository

	// PasscodeSource generates room passcodes
	PasscodeSource passcode.Source

	// Clock provides timestamps; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator provides log entry IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// MaxPlayers caps room membership; defaults to 4
	MaxPlayers int
}

// RegisterUserInput contains parameters for registering a user
type RegisterUserInput struct {
	PlayerID string
	Name     string
	Username string
}

// RegisterUserOutput contains the result of registering a user
type RegisterUserOutput struct {
	Player *models.Player
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	HostID   string
	Name     string
	Username string
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// Passcode is the join token assigned to the new room
	Passcode string
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	PlayerID string
	Name     string
	Username string
	Passcode string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// HostID is the host of the joined room
	HostID string
}

// LeaveRoomInput contains parameters for leaving a room
type LeaveRoomInput struct {
	PlayerID string
}

// LeaveRoomOutput contains the result of leaving a room
type LeaveRoomOutput struct {
	// Dissolved reports whether the room was dissolved because the
	// host left
	Dissolved bool

	// EvictedIDs lists the other members removed on dissolution
	EvictedIDs []string
}

// Standing is one row of a room's tally board
type Standing struct {
	PlayerID string
	Name     string

	// Tally is the player's running balance in cents
	Tally int64
}

// GetRoomPlayersInput contains parameters for reading a room's standings
type GetRoomPlayersInput struct {
	PlayerID string
}

// GetRoomPlayersOutput contains a room's standings in join order
type GetRoomPlayersOutput struct {
	Passcode  string
	HostID    string
	Standings []Standing
}

// GetActionHistoryInput contains parameters for reading a room's history
type GetActionHistoryInput struct {
	PlayerID string
}

// GetActionHistoryOutput contains a room's history in append order
type GetActionHistoryOutput struct {
	Entries []*models.LogEntry
}

// SetGameModeInput contains parameters for switching the game mode
type SetGameModeInput struct {
	HostID    string
	IsShooter bool
}

// SetGameModeOutput contains the result of switching the game mode
type SetGameModeOutput struct {
	Room *models.Room
}

// SetWinningSystemInput contains parameters for selecting a preset system
type SetWinningSystemInput struct {
	HostID string

	// Preset is the preset name ("tenTwenty", "twentyForty", ...)
	Preset string
}

// SetWinningSystemOutput contains the result of selecting a preset system
type SetWinningSystemOutput struct {
	Room *models.Room
}

// SetCustomWinningSystemInput contains parameters for installing a
// custom system
type SetCustomWinningSystemInput struct {
	HostID string

	// Amounts is ten whitespace-separated decimal amounts, base and
	// zimo per tier in tier order
	Amounts string
}

// SetCustomWinningSystemOutput contains the result of installing a
// custom system
type SetCustomWinningSystemOutput struct {
	Room *models.Room
}

// RecordWinInput contains parameters for settling a scoring event
type RecordWinInput struct {
	// WinnerID is the winning player
	WinnerID string

	// ShooterID is the discarding player (or flower owner); empty for
	// self-drawn events
	ShooterID string

	// Event is the scoring event type
	Event tally.EventType
}

// RecordWinOutput contains the result of settling a scoring event
type RecordWinOutput struct {
	// EntryID identifies the appended action history entry
	EntryID string

	// Description is the rendered history text
	Description string

	// Deltas are the applied balance adjustments
	Deltas []tally.Delta
}

// UndoWinInput contains parameters for reversing a scoring event. The
// event parameters must match the original recording; EntryID locates
// the history entry to strike.
type UndoWinInput struct {
	WinnerID  string
	ShooterID string
	Event     tally.EventType
	EntryID   string
}

// UndoWinOutput contains the result of reversing a scoring event
type UndoWinOutput struct {
	// Deltas are the applied balance adjustments
	Deltas []tally.Delta
}
