package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
	actionlogRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/actionlog"
	playerRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/player"
	"github.com/KirkDiggler/mahjong-tally/internal/tally"
)

// RecordWin settles a scoring event against the winner's room and
// appends it to the action history.
func (s *service) RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error) {
	room, members, err := s.resolveRoom(ctx, input.WinnerID)
	if err != nil {
		return nil, err
	}

	unlock := s.lockRoom(room.Passcode)
	defer unlock()

	deltas, err := s.settle(ctx, room, members, input.WinnerID, input.ShooterID, input.Event, tally.Pay)
	if err != nil {
		return nil, err
	}

	entry := &models.LogEntry{
		ID:          s.uuidGenerator.NewUUID(),
		Description: describeEvent(input.Event, input.WinnerID, input.ShooterID, members),
		CreatedAt:   s.clock.Now(),
	}

	if err := s.actionLogRepo.AppendEntry(ctx, &actionlogRepo.AppendEntryInput{
		Passcode: room.Passcode,
		Entry:    entry,
	}); err != nil {
		return nil, err
	}

	return &RecordWinOutput{
		EntryID:     entry.ID,
		Description: entry.Description,
		Deltas:      deltas,
	}, nil
}

// UndoWin reverses a previously recorded scoring event and strikes its
// history entry. The event parameters must match the original recording
// so the reversal computes the exact negated deltas.
func (s *service) UndoWin(ctx context.Context, input *UndoWinInput) (*UndoWinOutput, error) {
	room, members, err := s.resolveRoom(ctx, input.WinnerID)
	if err != nil {
		return nil, err
	}

	unlock := s.lockRoom(room.Passcode)
	defer unlock()

	deltas, err := s.settle(ctx, room, members, input.WinnerID, input.ShooterID, input.Event, tally.Undo)
	if err != nil {
		return nil, err
	}

	if input.EntryID != "" {
		if err := s.actionLogRepo.MarkReversed(ctx, &actionlogRepo.MarkReversedInput{
			Passcode: room.Passcode,
			EntryID:  input.EntryID,
		}); err != nil {
			return nil, err
		}
	}

	return &UndoWinOutput{Deltas: deltas}, nil
}

// settle computes the deltas for an event under the room's settings and
// applies them to the members' tallies.
func (s *service) settle(ctx context.Context, room *models.Room, members []*models.Player, winnerID, shooterID string, event tally.EventType, dir tally.Direction) ([]tally.Delta, error) {
	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}

	deltas, err := tally.Settle(&tally.Input{
		Event:       event,
		WinnerID:    winnerID,
		ShooterID:   shooterID,
		Members:     memberIDs,
		Table:       room.System,
		ShooterMode: room.IsShooter,
	}, dir)
	if err != nil {
		return nil, err
	}

	for _, delta := range deltas {
		if err := s.playerRepo.ApplyTallyDelta(ctx, &playerRepo.ApplyTallyDeltaInput{
			PlayerID: delta.PlayerID,
			Delta:    delta.Amount,
		}); err != nil {
			return nil, err
		}
	}

	return deltas, nil
}

// lockRoom serializes settlement for one room. The returned func
// releases the lock.
func (s *service) lockRoom(passcode string) func() {
	s.mu.Lock()
	lock, ok := s.roomLocks[passcode]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[passcode] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// describeEvent renders a history line for a scoring event, using
// display names where the players are still room members.
func describeEvent(event tally.EventType, winnerID, shooterID string, members []*models.Player) string {
	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	displayName := func(playerID string) string {
		if name, ok := names[playerID]; ok && name != "" {
			return name
		}
		return playerID
	}

	if shooterID == "" {
		return fmt.Sprintf("%s won %s", displayName(winnerID), event)
	}

	return fmt.Sprintf("%s won %s off %s", displayName(winnerID), event, displayName(shooterID))
}
