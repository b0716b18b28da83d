package messaging

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
	"github.com/KirkDiggler/mahjong-tally/internal/services/game"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *MessagingServiceTestSuite) TestGetWinMessageMentionsEveryone() {
	output, err := s.svc.GetWinMessage(s.ctx, &GetWinMessageInput{
		WinnerName:  "Ah Ming",
		ShooterName: "Siew Lan",
		EventName:   "3 Tai",
		Amount:      "1.6",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Ah Ming")
	s.Contains(output.Message, "Siew Lan")
	s.Contains(output.Message, "3 Tai")
	s.Contains(output.Message, "(+1.6)")
	s.Equal(ToneCelebration, output.Tone)
}

func (s *MessagingServiceTestSuite) TestGetWinMessageSelfDrawn() {
	output, err := s.svc.GetWinMessage(s.ctx, &GetWinMessageInput{
		WinnerName: "Ah Ming",
		EventName:  "Zimo Kong",
		Amount:     "1.2",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Ah Ming")
	s.Contains(output.Message, "Zimo Kong")
	s.Contains(output.Message, "(+1.2)")
}

func (s *MessagingServiceTestSuite) TestGetTallyBoardMessage() {
	output, err := s.svc.GetTallyBoardMessage(s.ctx, &GetTallyBoardMessageInput{
		Passcode: "qzmste",
		Rows: []TallyRow{
			{Name: "Ah Ming", Amount: "1.6", Positive: true},
			{Name: "Siew Lan", Amount: "-1.6"},
			{Name: "Mei", Amount: "0"},
		},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "qzmste")
	s.Contains(output.Message, "💰 Ah Ming: 1.6")
	s.Contains(output.Message, "🔻 Siew Lan: -1.6")
	s.Contains(output.Message, "➖ Mei: 0")
}

func (s *MessagingServiceTestSuite) TestGetTallyBoardMessageEmptyRoom() {
	output, err := s.svc.GetTallyBoardMessage(s.ctx, &GetTallyBoardMessageInput{
		Passcode: "qzmste",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "empty")
}

func (s *MessagingServiceTestSuite) TestGetHistoryMessageStrikesReversed() {
	output, err := s.svc.GetHistoryMessage(s.ctx, &GetHistoryMessageInput{
		Entries: []*models.LogEntry{
			{ID: "e1", Description: "Ah Ming won 1 Tai off Siew Lan"},
			{ID: "e2", Description: "Siew Lan won Zimo Kong", Reversed: true},
		},
	})
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(output.Message), "\n")
	s.Require().Len(lines, 2)
	s.Equal("1. Ah Ming won 1 Tai off Siew Lan", lines[0])
	s.Equal("2. ~~Siew Lan won Zimo Kong~~", lines[1])
}

func (s *MessagingServiceTestSuite) TestGetErrorMessageMapping() {
	cases := map[error]string{
		game.ErrNoSuchRoom:          "passcode",
		game.ErrRoomFull:            "full",
		game.ErrPlayerExists:        "already",
		game.ErrUnregisteredUser:    "Register",
		game.ErrPlayerNotInRoom:     "not in a room",
		game.ErrNotHost:             "host",
		game.ErrUnknownSystem:       "winning system",
		game.ErrInvalidCustomSystem: "ten amounts",
		errors.New("redis down"):    "try",
	}

	for input, want := range cases {
		output, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{Error: input})
		s.Require().NoError(err)
		s.Contains(output.Message, want, "error %v", input)
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
