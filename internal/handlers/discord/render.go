package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
	"github.com/KirkDiggler/mahjong-tally/internal/services/game"
	"github.com/KirkDiggler/mahjong-tally/internal/services/messaging"
	"github.com/KirkDiggler/mahjong-tally/internal/tally"
)

// renderWinAnnouncement builds the channel announcement for a recorded
// win, mentioning the players and showing the winner's credit.
func renderWinAnnouncement(ctx context.Context, messagingService messaging.Service, output *game.RecordWinOutput, winnerID, shooterID string, event tally.EventType) string {
	var winnerAmount int64
	for _, delta := range output.Deltas {
		if delta.PlayerID == winnerID {
			winnerAmount = delta.Amount
			break
		}
	}

	shooterName := ""
	if shooterID != "" {
		shooterName = fmt.Sprintf("<@%s>", shooterID)
	}

	msg, err := messagingService.GetWinMessage(ctx, &messaging.GetWinMessageInput{
		WinnerName:  fmt.Sprintf("<@%s>", winnerID),
		ShooterName: shooterName,
		EventName:   event.String(),
		Amount:      paytable.FormatAmount(winnerAmount),
	})
	if err != nil {
		// Fall back to the plain log line
		return output.Description
	}

	return msg.Message
}
