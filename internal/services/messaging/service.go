package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/mahjong-tally/internal/services/game"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

// GetWinMessage returns an announcement for a recorded win
func (s *service) GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	var messages []string
	if input.ShooterName == "" {
		messages = []string{
			"%[1]s self-drew %[2]s! Everyone pays up. 💰 (+%[3]s)",
			"Zimo! %[1]s takes %[2]s off the whole table. (+%[3]s)",
			"%[1]s drew it themselves! %[2]s, collected from all sides. (+%[3]s)",
			"The wall provides! %[1]s wins %[2]s, nobody is safe. (+%[3]s)",
		}

		selected := messages[s.rand.Intn(len(messages))]

		return &GetWinMessageOutput{
			Message: fmt.Sprintf(selected, input.WinnerName, input.EventName, input.Amount),
			Tone:    tone,
		}, nil
	}

	messages = []string{
		"%[1]s wins %[2]s off %[3]s! 🀄 (+%[4]s)",
		"%[3]s fed the winning tile! %[1]s takes %[2]s. (+%[4]s)",
		"Ouch, %[3]s. That discard cost you. %[1]s wins %[2]s. (+%[4]s)",
		"%[1]s was waiting on that one! %[2]s, courtesy of %[3]s. (+%[4]s)",
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetWinMessageOutput{
		Message: fmt.Sprintf(selected, input.WinnerName, input.EventName, input.ShooterName, input.Amount),
		Tone:    tone,
	}, nil
}

// GetUndoMessage returns an announcement for an undone win
func (s *service) GetUndoMessage(ctx context.Context, input *GetUndoMessageInput) (*GetUndoMessageOutput, error) {
	messages := []string{
		"Scratch that! \"%s\" has been undone and everyone's tally restored.",
		"Never mind! \"%s\" is off the books.",
		"Reversed: \"%s\". The balances are back where they were.",
	}

	selected := messages[s.rand.Intn(len(messages))]

	return &GetUndoMessageOutput{
		Message: fmt.Sprintf(selected, input.Description),
	}, nil
}

// GetTallyBoardMessage renders a room's standings
func (s *service) GetTallyBoardMessage(ctx context.Context, input *GetTallyBoardMessageInput) (*GetTallyBoardMessageOutput, error) {
	if len(input.Rows) == 0 {
		return &GetTallyBoardMessageOutput{
			Message: "The room is empty. Share the passcode to get a table going!",
		}, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Room %s**\n", input.Passcode)
	for _, row := range input.Rows {
		marker := "🔻"
		if row.Positive {
			marker = "💰"
		}
		if row.Amount == "0" {
			marker = "➖"
		}
		fmt.Fprintf(&sb, "%s %s: %s\n", marker, row.Name, row.Amount)
	}

	return &GetTallyBoardMessageOutput{Message: sb.String()}, nil
}

// GetHistoryMessage renders a room's action history, oldest first.
// Undone entries stay visible with strikethrough.
func (s *service) GetHistoryMessage(ctx context.Context, input *GetHistoryMessageInput) (*GetHistoryMessageOutput, error) {
	if len(input.Entries) == 0 {
		return &GetHistoryMessageOutput{
			Message: "Nothing on the books yet. Record a win to get started!",
		}, nil
	}

	var sb strings.Builder
	for i, entry := range input.Entries {
		if entry.Reversed {
			fmt.Fprintf(&sb, "%d. ~~%s~~\n", i+1, entry.Description)
			continue
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, entry.Description)
	}

	return &GetHistoryMessageOutput{Message: sb.String()}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	var message string

	switch {
	case errors.Is(input.Error, game.ErrNoSuchRoom):
		message = "No room with that passcode. Double-check the six letters and try again."
	case errors.Is(input.Error, game.ErrRoomFull):
		message = "That table is full! Four players max."
	case errors.Is(input.Error, game.ErrPlayerExists):
		message = "You're already seated at that table."
	case errors.Is(input.Error, game.ErrUnregisteredUser):
		message = "I don't know you yet! Register first, then join."
	case errors.Is(input.Error, game.ErrPlayerNotInRoom):
		message = "You're not in a room right now. Create one or join with a passcode."
	case errors.Is(input.Error, game.ErrNotHost):
		message = "Only the room host can change that."
	case errors.Is(input.Error, game.ErrUnknownSystem):
		message = "I don't recognize that winning system."
	case errors.Is(input.Error, game.ErrInvalidCustomSystem):
		message = "Custom systems need ten amounts: base and self-drawn for each of the five Tai levels."
	default:
		message = "Something went wrong on my end. Give it another try in a moment."
	}

	return &GetErrorMessageOutput{Message: message}, nil
}
