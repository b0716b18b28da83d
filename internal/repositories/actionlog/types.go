package actionlog

import "github.com/KirkDiggler/mahjong-tally/internal/models"

// AppendEntryInput contains parameters for appending a log entry
type AppendEntryInput struct {
	Passcode string
	Entry    *models.LogEntry
}

// MarkReversedInput contains parameters for flagging an entry as undone
type MarkReversedInput struct {
	Passcode string
	EntryID  string
}

// ListEntriesInput contains parameters for listing a room's history
type ListEntriesInput struct {
	Passcode string
}

// ListEntriesOutput contains a room's history in append order
type ListEntriesOutput struct {
	Entries []*models.LogEntry
}

// DeleteLogInput contains parameters for removing a room's history
type DeleteLogInput struct {
	Passcode string
}
