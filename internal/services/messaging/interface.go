package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWinMessage returns an announcement for a recorded win
	GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error)

	// GetUndoMessage returns an announcement for an undone win
	GetUndoMessage(ctx context.Context, input *GetUndoMessageInput) (*GetUndoMessageOutput, error)

	// GetTallyBoardMessage renders a room's standings
	GetTallyBoardMessage(ctx context.Context, input *GetTallyBoardMessageInput) (*GetTallyBoardMessageOutput, error)

	// GetHistoryMessage renders a room's action history
	GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
