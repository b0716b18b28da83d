package messaging

import "github.com/KirkDiggler/mahjong-tally/internal/models"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneSympathetic softens the blow for the payers
	ToneSympathetic MessageTone = "sympathetic"
)

// ServiceConfig holds the configuration for the messaging service
type ServiceConfig struct{}

// GetWinMessageInput contains parameters for a win announcement
type GetWinMessageInput struct {
	// WinnerName is the display name of the winner
	WinnerName string

	// ShooterName is the display name of the shooter; empty for a
	// self-drawn win
	ShooterName string

	// EventName is the scoring event's display name
	EventName string

	// Amount is the winner's credit, already formatted ("1.6")
	Amount string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetWinMessageOutput contains the result of a win announcement
type GetWinMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetUndoMessageInput contains parameters for an undo announcement
type GetUndoMessageInput struct {
	// Description is the history text of the struck entry
	Description string
}

// GetUndoMessageOutput contains the result of an undo announcement
type GetUndoMessageOutput struct {
	Message string
}

// TallyRow is one line of the rendered standings
type TallyRow struct {
	Name string

	// Amount is the player's balance, already formatted ("-0.4")
	Amount string

	// Positive reports whether the balance is ahead
	Positive bool
}

// GetTallyBoardMessageInput contains parameters for rendering standings
type GetTallyBoardMessageInput struct {
	Passcode string
	Rows     []TallyRow
}

// GetTallyBoardMessageOutput contains the rendered standings
type GetTallyBoardMessageOutput struct {
	Message string
}

// GetHistoryMessageInput contains parameters for rendering history
type GetHistoryMessageInput struct {
	Entries []*models.LogEntry
}

// GetHistoryMessageOutput contains the rendered history
type GetHistoryMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for a user-facing error
type GetErrorMessageInput struct {
	Error error
}

// GetErrorMessageOutput contains the user-facing error text
type GetErrorMessageOutput struct {
	Message string
}
