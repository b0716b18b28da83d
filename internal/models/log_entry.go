package models

import (
	"time"
)

// LogEntry is one recorded settlement in a room's action history.
// Entries are append-only: undo flips Reversed, nothing is ever
// deleted until the room itself is dissolved.
type LogEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// Description is the rendered text of the settlement
	Description string

	// Reversed marks an entry whose settlement has been undone
	Reversed bool

	// CreatedAt is when the entry was appended
	CreatedAt time.Time
}
