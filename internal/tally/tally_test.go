package tally

import (
	"testing"

	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
	"github.com/stretchr/testify/suite"
)

type TallyTestSuite struct {
	suite.Suite

	table   *paytable.Table
	members []string
}

func (s *TallyTestSuite) SetupTest() {
	table, ok := paytable.Preset("tenTwenty")
	s.Require().True(ok)
	s.table = table
	s.members = []string{"alice", "bob", "carol", "dave"}
}

func TestTallyTestSuite(t *testing.T) {
	suite.Run(t, new(TallyTestSuite))
}

func (s *TallyTestSuite) amounts(deltas []Delta) map[string]int64 {
	byPlayer := make(map[string]int64, len(deltas))
	for _, d := range deltas {
		byPlayer[d.PlayerID] = d.Amount
	}
	return byPlayer
}

func (s *TallyTestSuite) sum(deltas []Delta) int64 {
	var total int64
	for _, d := range deltas {
		total += d.Amount
	}
	return total
}

func (s *TallyTestSuite) TestOneTaiShooterMode() {
	// tenTwenty 1 Tai: base 0.1, zimo 0.2. The shooter alone pays
	// 2*0.1+0.2 = 0.4; the other two players are untouched.
	deltas, err := Settle(&Input{
		Event:       EventOneTai,
		WinnerID:    "alice",
		ShooterID:   "bob",
		Members:     s.members,
		Table:       s.table,
		ShooterMode: true,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(40), amounts["alice"])
	s.Equal(int64(-40), amounts["bob"])
	s.NotContains(amounts, "carol")
	s.NotContains(amounts, "dave")
	s.Zero(s.sum(deltas))
}

func (s *TallyTestSuite) TestOneTaiNonShooterMode() {
	// Non-shooter mode splits the loss: shooter pays zimo (0.2), the
	// other two pay base (0.1) each; winner still gains 0.4.
	deltas, err := Settle(&Input{
		Event:     EventOneTai,
		WinnerID:  "alice",
		ShooterID: "bob",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(40), amounts["alice"])
	s.Equal(int64(-20), amounts["bob"])
	s.Equal(int64(-10), amounts["carol"])
	s.Equal(int64(-10), amounts["dave"])
	s.Zero(s.sum(deltas))
}

func (s *TallyTestSuite) TestZimoTwoTai() {
	// tenTwenty 2 Tai zimo is 0.4: all three non-winners pay 0.4 and
	// the winner gains 1.2.
	deltas, err := Settle(&Input{
		Event:    EventZimoTwoTai,
		WinnerID: "alice",
		Members:  s.members,
		Table:    s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(120), amounts["alice"])
	s.Equal(int64(-40), amounts["bob"])
	s.Equal(int64(-40), amounts["carol"])
	s.Equal(int64(-40), amounts["dave"])
	s.Zero(s.sum(deltas))
}

func (s *TallyTestSuite) TestBiteWithShooter() {
	deltas, err := Settle(&Input{
		Event:     EventBite,
		WinnerID:  "alice",
		ShooterID: "carol",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(10), amounts["alice"])
	s.Equal(int64(-10), amounts["carol"])
	s.Len(deltas, 2)
}

func (s *TallyTestSuite) TestBiteSelfDrawn() {
	deltas, err := Settle(&Input{
		Event:    EventBite,
		WinnerID: "alice",
		Members:  s.members,
		Table:    s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(30), amounts["alice"])
	s.Equal(int64(-10), amounts["bob"])
	s.Equal(int64(-10), amounts["carol"])
	s.Equal(int64(-10), amounts["dave"])
}

func (s *TallyTestSuite) TestDoubleBiteUsesZimoAmount() {
	deltas, err := Settle(&Input{
		Event:     EventDoubleBite,
		WinnerID:  "alice",
		ShooterID: "bob",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(20), amounts["alice"])
	s.Equal(int64(-20), amounts["bob"])
}

func (s *TallyTestSuite) TestKongShooterMode() {
	deltas, err := Settle(&Input{
		Event:       EventKong,
		WinnerID:    "alice",
		ShooterID:   "dave",
		Members:     s.members,
		Table:       s.table,
		ShooterMode: true,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(30), amounts["alice"])
	s.Equal(int64(-30), amounts["dave"])
	s.Len(deltas, 2)
}

func (s *TallyTestSuite) TestKongNonShooterMode() {
	deltas, err := Settle(&Input{
		Event:     EventKong,
		WinnerID:  "alice",
		ShooterID: "dave",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(30), amounts["alice"])
	s.Equal(int64(-10), amounts["bob"])
	s.Equal(int64(-10), amounts["carol"])
	s.Equal(int64(-10), amounts["dave"])
	s.Zero(s.sum(deltas))
}

func (s *TallyTestSuite) TestZimoKongIsDistinctFromKong() {
	deltas, err := Settle(&Input{
		Event:    EventZimoKong,
		WinnerID: "alice",
		Members:  s.members,
		Table:    s.table,
	}, Pay)
	s.Require().NoError(err)

	// Zimo Kong settles at the 1 Tai zimo amount (0.2 per player),
	// not the Kong base amount.
	amounts := s.amounts(deltas)
	s.Equal(int64(60), amounts["alice"])
	s.Equal(int64(-20), amounts["bob"])
}

func (s *TallyTestSuite) TestMatchingFlowers() {
	deltas, err := Settle(&Input{
		Event:     EventMatchingFlowers,
		WinnerID:  "alice",
		ShooterID: "bob",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(10), amounts["alice"])
	s.Equal(int64(-10), amounts["bob"])
	s.Len(deltas, 2)

	deltas, err = Settle(&Input{
		Event:     EventHiddenMatchingFlowers,
		WinnerID:  "alice",
		ShooterID: "bob",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)
	s.Equal(int64(-20), s.amounts(deltas)["bob"])
}

func (s *TallyTestSuite) TestZeroSumAcrossAllEvents() {
	events := []EventType{
		EventOneTai, EventTwoTai, EventThreeTai, EventFourTai, EventFiveTai,
		EventZimoOneTai, EventZimoTwoTai, EventZimoThreeTai, EventZimoFourTai, EventZimoFiveTai,
		EventBite, EventDoubleBite, EventKong, EventZimoKong,
		EventMatchingFlowers, EventHiddenMatchingFlowers,
	}

	for _, name := range paytable.PresetNames() {
		table, ok := paytable.Preset(name)
		s.Require().True(ok)

		for _, event := range events {
			for _, shooterMode := range []bool{true, false} {
				shooterID := "bob"
				if event.SelfDrawn() {
					shooterID = ""
				}

				deltas, err := Settle(&Input{
					Event:       event,
					WinnerID:    "alice",
					ShooterID:   shooterID,
					Members:     s.members,
					Table:       table,
					ShooterMode: shooterMode,
				}, Pay)
				s.Require().NoError(err, "%s %s", name, event)
				s.Zero(s.sum(deltas), "%s %s shooterMode=%v", name, event, shooterMode)
			}
		}
	}
}

func (s *TallyTestSuite) TestUndoNegatesPay() {
	events := []EventType{
		EventThreeTai, EventZimoFiveTai, EventBite, EventDoubleBite,
		EventKong, EventZimoKong, EventMatchingFlowers,
	}

	for _, event := range events {
		shooterID := "bob"
		if event.SelfDrawn() {
			shooterID = ""
		}
		in := &Input{
			Event:     event,
			WinnerID:  "alice",
			ShooterID: shooterID,
			Members:   s.members,
			Table:     s.table,
		}

		paid, err := Settle(in, Pay)
		s.Require().NoError(err)
		undone, err := Settle(in, Undo)
		s.Require().NoError(err)

		s.Require().Len(undone, len(paid), "%s", event)
		for i := range paid {
			s.Equal(paid[i].PlayerID, undone[i].PlayerID)
			s.Equal(-paid[i].Amount, undone[i].Amount, "%s %s", event, paid[i].PlayerID)
		}
	}
}

func (s *TallyTestSuite) TestKongThenUndoRestoresBalances() {
	balances := map[string]int64{"alice": 120, "bob": -40, "carol": -40, "dave": -40}
	before := map[string]int64{}
	for id, v := range balances {
		before[id] = v
	}

	in := &Input{
		Event:     EventKong,
		WinnerID:  "alice",
		ShooterID: "bob",
		Members:   s.members,
		Table:     s.table,
	}

	paid, err := Settle(in, Pay)
	s.Require().NoError(err)
	for _, d := range paid {
		balances[d.PlayerID] += d.Amount
	}

	undone, err := Settle(in, Undo)
	s.Require().NoError(err)
	for _, d := range undone {
		balances[d.PlayerID] += d.Amount
	}

	s.Equal(before, balances)
}

func (s *TallyTestSuite) TestAbsentShooterShareIsNotRedistributed() {
	// The shooter left the room between discarding and settlement: the
	// winner is still credited in full, nobody pays the shooter share.
	deltas, err := Settle(&Input{
		Event:     EventTwoTai,
		WinnerID:  "alice",
		ShooterID: "zed",
		Members:   s.members,
		Table:     s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(80), amounts["alice"])
	s.NotContains(amounts, "zed")
	s.Equal(int64(-10), amounts["bob"])
}

func (s *TallyTestSuite) TestShortHandedZimoKeepsFullCredit() {
	deltas, err := Settle(&Input{
		Event:    EventZimoOneTai,
		WinnerID: "alice",
		Members:  []string{"alice", "bob", "carol"},
		Table:    s.table,
	}, Pay)
	s.Require().NoError(err)

	amounts := s.amounts(deltas)
	s.Equal(int64(60), amounts["alice"])
	s.Equal(int64(-20), amounts["bob"])
	s.Equal(int64(-20), amounts["carol"])
}

func (s *TallyTestSuite) TestShooterRequired() {
	for _, event := range []EventType{EventOneTai, EventKong, EventMatchingFlowers, EventHiddenMatchingFlowers} {
		_, err := Settle(&Input{
			Event:    event,
			WinnerID: "alice",
			Members:  s.members,
			Table:    s.table,
		}, Pay)
		s.ErrorIs(err, ErrShooterRequired, "%s", event)
	}
}

func (s *TallyTestSuite) TestWinnerAsOwnShooterIsRejected() {
	// Naming the winner as their own shooter would credit the win
	// without ever debiting anyone, so it must fail instead of
	// producing a one-sided delta.
	for _, event := range []EventType{EventOneTai, EventBite, EventKong, EventMatchingFlowers} {
		for _, shooterMode := range []bool{true, false} {
			_, err := Settle(&Input{
				Event:       event,
				WinnerID:    "alice",
				ShooterID:   "alice",
				Members:     s.members,
				Table:       s.table,
				ShooterMode: shooterMode,
			}, Pay)
			s.ErrorIs(err, ErrWinnerIsShooter, "%s shooterMode=%v", event, shooterMode)
		}
	}

	_, err := Settle(&Input{
		Event:     EventOneTai,
		WinnerID:  "alice",
		ShooterID: "alice",
		Members:   s.members,
		Table:     s.table,
	}, Undo)
	s.ErrorIs(err, ErrWinnerIsShooter)
}

func (s *TallyTestSuite) TestUnknownEventFailsLoudly() {
	_, err := Settle(&Input{
		Event:    EventType(99),
		WinnerID: "alice",
		Members:  s.members,
		Table:    s.table,
	}, Pay)
	s.Error(err)
}

func (s *TallyTestSuite) TestNilTable() {
	_, err := Settle(&Input{
		Event:    EventBite,
		WinnerID: "alice",
		Members:  s.members,
	}, Pay)
	s.ErrorIs(err, ErrNilTable)
}

func (s *TallyTestSuite) TestEventByName() {
	for _, name := range []string{"1 Tai", "Zimo 5 Tai", "Double Bite", "Hidden Matching Flowers"} {
		event, ok := EventByName(name)
		s.Require().True(ok, name)
		s.Equal(name, event.String())
	}

	_, ok := EventByName("6 Tai")
	s.False(ok)
}
