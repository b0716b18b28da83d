package actionlog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mahjong-tally/internal/repositories/actionlog Repository

import (
	"context"
)

// Repository defines the interface for action history persistence. The
// log is append-only: entries are never reordered and only removed when
// the room itself is dissolved.
type Repository interface {
	// AppendEntry appends an entry to a room's action history
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// MarkReversed flags an entry as undone. Marking an already
	// reversed entry is a no-op.
	MarkReversed(ctx context.Context, input *MarkReversedInput) error

	// ListEntries retrieves a room's action history in append order
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// DeleteLog removes a room's entire action history
	DeleteLog(ctx context.Context, input *DeleteLogInput) error
}
