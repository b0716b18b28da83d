package models

import (
	"time"

	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
)

// Room represents a game session shared by up to four players
type Room struct {
	// Passcode is the six-lowercase-letter token players join with
	Passcode string

	// HostID is the player who created the room; their departure
	// dissolves it
	HostID string

	// IsShooter is the game-mode flag: when set, the shooter alone
	// bears the full discard loss
	IsShooter bool

	// System is the active winning system
	System *paytable.Table

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room config was last changed
	UpdatedAt time.Time
}
