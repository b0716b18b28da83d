// Package tally computes the signed balance adjustments for a scoring
// event. Settlement is a pure function of the event, the room's winning
// system, the game mode, and the current member set; applying the
// resulting deltas additively is the caller's job.
package tally

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
)

// EventType identifies a scoring event.
type EventType int

const (
	EventOneTai EventType = iota
	EventTwoTai
	EventThreeTai
	EventFourTai
	EventFiveTai
	EventZimoOneTai
	EventZimoTwoTai
	EventZimoThreeTai
	EventZimoFourTai
	EventZimoFiveTai
	EventBite
	EventDoubleBite
	EventKong
	EventZimoKong
	EventMatchingFlowers
	EventHiddenMatchingFlowers
)

var eventNames = map[EventType]string{
	EventOneTai:                "1 Tai",
	EventTwoTai:                "2 Tai",
	EventThreeTai:              "3 Tai",
	EventFourTai:               "4 Tai",
	EventFiveTai:               "5 Tai",
	EventZimoOneTai:            "Zimo 1 Tai",
	EventZimoTwoTai:            "Zimo 2 Tai",
	EventZimoThreeTai:          "Zimo 3 Tai",
	EventZimoFourTai:           "Zimo 4 Tai",
	EventZimoFiveTai:           "Zimo 5 Tai",
	EventBite:                  "Bite",
	EventDoubleBite:            "Double Bite",
	EventKong:                  "Kong",
	EventZimoKong:              "Zimo Kong",
	EventMatchingFlowers:       "Matching Flowers",
	EventHiddenMatchingFlowers: "Hidden Matching Flowers",
}

// String returns the display name of the event.
func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(e))
}

// EventByName resolves a display name back to its event type.
func EventByName(name string) (EventType, bool) {
	for e, n := range eventNames {
		if n == name {
			return e, true
		}
	}
	return 0, false
}

// SelfDrawn reports whether the event is settled by all non-winners
// (no shooter involved).
func (e EventType) SelfDrawn() bool {
	switch e {
	case EventZimoOneTai, EventZimoTwoTai, EventZimoThreeTai, EventZimoFourTai, EventZimoFiveTai, EventZimoKong:
		return true
	}
	return false
}

// Direction selects between applying an event and reversing it.
type Direction int

const (
	Pay Direction = iota
	Undo
)

// Delta is a signed balance adjustment for one player, in cents.
type Delta struct {
	PlayerID string
	Amount   int64
}

// Input describes a scoring event to settle.
type Input struct {
	// Event is the scoring event type
	Event EventType

	// WinnerID is the winning player
	WinnerID string

	// ShooterID is the player who discarded the winning tile (or, for
	// flower events, the flower owner). Empty means self-drawn for the
	// events that support both forms (Bite, Double Bite).
	ShooterID string

	// Members is the room's current player set, in seating order.
	// Only players in this set receive deltas: a shooter who is no
	// longer a member pays nothing and their share is not
	// redistributed.
	Members []string

	// Table is the room's active winning system
	Table *paytable.Table

	// ShooterMode is the room's game-mode flag: when set, the shooter
	// alone bears the full discard loss instead of splitting it
	ShooterMode bool
}

var (
	// ErrShooterRequired is returned for an event that cannot be
	// self-drawn when no shooter is given.
	ErrShooterRequired = errors.New("event requires a shooter")

	// ErrWinnerIsShooter is returned when the winner is named as their
	// own shooter. A win off one's own discard has no settlement shape;
	// the self-drawn form of the event covers that table state.
	ErrWinnerIsShooter = errors.New("winner cannot be their own shooter")

	// ErrNilTable is returned when no winning system is supplied.
	ErrNilTable = errors.New("winning system cannot be nil")
)

// split is a settlement shape: how much the shooter loses, how much each
// remaining non-winner loses, and how much the winner gains. A self-drawn
// split has no shooter; every non-winner pays othersLoss.
type split struct {
	shooterLoss int64
	othersLoss  int64
	winnerGain  int64
	selfDrawn   bool
}

// Settle computes the balance deltas for an event. Undo negates every
// delta relative to the equivalent Pay computation, so settlement is its
// own algebraic inverse. Deltas sum to zero whenever every involved
// player is present in the member set. Zero deltas are omitted.
func Settle(in *Input, dir Direction) ([]Delta, error) {
	if in == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}
	if in.Table == nil {
		return nil, ErrNilTable
	}
	if in.ShooterID != "" && in.ShooterID == in.WinnerID {
		return nil, ErrWinnerIsShooter
	}

	sp, err := eventSplit(in)
	if err != nil {
		return nil, err
	}

	multiplier := int64(1)
	if dir == Undo {
		multiplier = -1
	}

	deltas := make([]Delta, 0, len(in.Members))
	for _, id := range in.Members {
		var amount int64
		switch {
		case id == in.WinnerID:
			amount = sp.winnerGain
		case !sp.selfDrawn && id == in.ShooterID:
			amount = -sp.shooterLoss
		default:
			amount = -sp.othersLoss
		}

		if amount == 0 {
			continue
		}
		deltas = append(deltas, Delta{PlayerID: id, Amount: amount * multiplier})
	}

	return deltas, nil
}

// eventSplit maps an event onto its settlement shape. The switch is
// exhaustive over the defined event types; an out-of-range value is a
// programmer error and fails loudly.
func eventSplit(in *Input) (split, error) {
	table := in.Table

	switch in.Event {
	case EventOneTai, EventTwoTai, EventThreeTai, EventFourTai, EventFiveTai:
		if in.ShooterID == "" {
			return split{}, ErrShooterRequired
		}
		tier := paytable.OneTai + paytable.Tier(in.Event-EventOneTai)
		return discardSplit(table.Payout(tier), in.ShooterMode), nil

	case EventZimoOneTai, EventZimoTwoTai, EventZimoThreeTai, EventZimoFourTai, EventZimoFiveTai:
		tier := paytable.OneTai + paytable.Tier(in.Event-EventZimoOneTai)
		return selfDrawnSplit(table.Amount(tier, true)), nil

	case EventBite:
		amount := table.Amount(paytable.OneTai, false)
		if in.ShooterID == "" {
			return selfDrawnSplit(amount), nil
		}
		return shooterOnlySplit(amount), nil

	case EventDoubleBite:
		amount := table.Amount(paytable.OneTai, true)
		if in.ShooterID == "" {
			return selfDrawnSplit(amount), nil
		}
		return shooterOnlySplit(amount), nil

	case EventKong:
		if in.ShooterID == "" {
			return split{}, ErrShooterRequired
		}
		base := table.Amount(paytable.OneTai, false)
		if in.ShooterMode {
			return shooterOnlySplit(3 * base), nil
		}
		return split{shooterLoss: base, othersLoss: base, winnerGain: 3 * base}, nil

	case EventZimoKong:
		return selfDrawnSplit(table.Amount(paytable.OneTai, true)), nil

	case EventMatchingFlowers:
		if in.ShooterID == "" {
			return split{}, ErrShooterRequired
		}
		return shooterOnlySplit(table.Amount(paytable.OneTai, false)), nil

	case EventHiddenMatchingFlowers:
		if in.ShooterID == "" {
			return split{}, ErrShooterRequired
		}
		return shooterOnlySplit(table.Amount(paytable.OneTai, true)), nil
	}

	return split{}, fmt.Errorf("unhandled event type %d", int(in.Event))
}

// discardSplit settles a k-Tai discard win. In shooter mode the shooter
// pays the full 2*base+zimo; otherwise the shooter pays zimo and the two
// remaining players pay base each. The winner gains 2*base+zimo either
// way.
func discardSplit(p paytable.Payout, shooterMode bool) split {
	gain := 2*p.Base + p.Zimo
	if shooterMode {
		return split{shooterLoss: gain, winnerGain: gain}
	}
	return split{shooterLoss: p.Zimo, othersLoss: p.Base, winnerGain: gain}
}

// selfDrawnSplit settles a self-drawn win: every non-winner pays the
// per-player amount and the winner gains three shares.
func selfDrawnSplit(perPlayer int64) split {
	return split{othersLoss: perPlayer, winnerGain: 3 * perPlayer, selfDrawn: true}
}

// shooterOnlySplit settles an event where the shooter alone pays.
func shooterOnlySplit(amount int64) split {
	return split{shooterLoss: amount, winnerGain: amount}
}
