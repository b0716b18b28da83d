package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
	"github.com/KirkDiggler/mahjong-tally/internal/services/game"
	"github.com/KirkDiggler/mahjong-tally/internal/services/messaging"
	"github.com/KirkDiggler/mahjong-tally/internal/tally"
	"github.com/bwmarrin/discordgo"
)

// lastWin remembers the most recent recorded win in a channel so that
// /mahjong undo can reverse it without the caller restating the event.
type lastWin struct {
	entryID     string
	description string
	winnerID    string
	shooterID   string
	event       tally.EventType
}

// MahjongCommand handles the /mahjong command
type MahjongCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service

	mu       sync.Mutex
	lastWins map[string]*lastWin // keyed by channel ID
}

// NewMahjongCommand creates a new mahjong command handler
func NewMahjongCommand(gameService game.Service, messagingService messaging.Service) *MahjongCommand {
	return &MahjongCommand{
		BaseCommand: BaseCommand{
			Name:        "mahjong",
			Description: "Mahjong score tracking commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Register yourself with the score keeper",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new room and become its host",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join a room by passcode",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "passcode",
							Description: "Six-letter room passcode",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave your current room",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "tally",
					Description: "Show your room's current standings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show your room's action history",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mode",
					Description: "Switch between shooter and normal settlement (host only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Settlement mode",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Shooter", Value: "shooter"},
								{Name: "Normal", Value: "normal"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "system",
					Description: "Select a preset winning system (host only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "preset",
							Description: "Winning system preset",
							Required:    true,
							Choices:     presetChoices(),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "custom",
					Description: "Install a custom winning system (host only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "amounts",
							Description: "Ten amounts: base and self-drawn for 1 through 5 Tai",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "record",
					Description: "Record a win",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "event",
							Description: "Scoring event",
							Required:    true,
							Choices:     eventChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "winner",
							Description: "Winning player",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "shooter",
							Description: "Player who discarded the winning tile (omit for self-drawn)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Undo the most recently recorded win",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		lastWins:         make(map[string]*lastWin),
	}
}

// presetChoices lists the built-in winning systems as command choices
func presetChoices() []*discordgo.ApplicationCommandOptionChoice {
	names := paytable.PresetNames()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}
	return choices
}

// eventChoices lists every scoring event as a command choice
func eventChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for e := tally.EventOneTai; e <= tally.EventHiddenMatchingFlowers; e++ {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  e.String(),
			Value: e.String(),
		})
	}
	return choices
}

// Handle processes a Discord interaction for the mahjong command
func (c *MahjongCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID := i.Member.User.ID
	username := i.Member.User.Username
	displayName := username
	if i.Member.Nick != "" {
		displayName = i.Member.Nick
	}

	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "register":
		err = c.handleRegister(s, i, userID, displayName, username)
	case "create":
		err = c.handleCreate(s, i, userID, displayName, username)
	case "join":
		err = c.handleJoin(s, i, sub, userID, displayName, username)
	case "leave":
		err = c.handleLeave(s, i, userID)
	case "tally":
		err = c.handleTally(s, i, userID)
	case "history":
		err = c.handleHistory(s, i, userID)
	case "mode":
		err = c.handleMode(s, i, sub, userID)
	case "system":
		err = c.handleSystem(s, i, sub, userID)
	case "custom":
		err = c.handleCustom(s, i, sub, userID)
	case "record":
		err = c.handleRecord(s, i, sub, userID)
	case "undo":
		err = c.handleUndo(s, i, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

func (c *MahjongCommand) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate, userID, displayName, username string) error {
	ctx := context.Background()

	_, err := c.gameService.RegisterUser(ctx, &game.RegisterUserInput{
		PlayerID: userID,
		Name:     displayName,
		Username: username,
	})
	if err != nil {
		log.Printf("Error registering user %s: %v", userID, err)
		return c.respondWithServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You're registered as **%s**. Create a room or join one with a passcode!", displayName))
}

func (c *MahjongCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, userID, displayName, username string) error {
	ctx := context.Background()

	output, err := c.gameService.CreateRoom(ctx, &game.CreateRoomInput{
		HostID:   userID,
		Name:     displayName,
		Username: username,
	})
	if err != nil {
		log.Printf("Error creating room for %s: %v", userID, err)
		return c.respondWithServiceError(s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Room created! Share the passcode **%s** so others can join. You're the host.", output.Passcode))
}

func (c *MahjongCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, userID, displayName, username string) error {
	ctx := context.Background()

	passcode := sub.Options[0].StringValue()

	output, err := c.gameService.JoinRoom(ctx, &game.JoinRoomInput{
		PlayerID: userID,
		Name:     displayName,
		Username: username,
		Passcode: passcode,
	})
	if err != nil {
		log.Printf("Error joining room %s for %s: %v", passcode, userID, err)
		return c.respondWithServiceError(s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("**%s** joined room **%s**! Host: <@%s>", displayName, passcode, output.HostID))
}

func (c *MahjongCommand) handleLeave(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.gameService.LeaveRoom(ctx, &game.LeaveRoomInput{
		PlayerID: userID,
	})
	if err != nil {
		log.Printf("Error leaving room for %s: %v", userID, err)
		return c.respondWithServiceError(s, i, err)
	}

	if output.Dissolved {
		return RespondWithMessage(s, i, "The host left, so the room has been dissolved. Everyone is free to start fresh!")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("<@%s> left the room.", userID))
}

func (c *MahjongCommand) handleTally(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	players, err := c.gameService.GetRoomPlayers(ctx, &game.GetRoomPlayersInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, err)
	}

	rows := make([]messaging.TallyRow, 0, len(players.Standings))
	for _, standing := range players.Standings {
		rows = append(rows, messaging.TallyRow{
			Name:     standing.Name,
			Amount:   paytable.FormatAmount(standing.Tally),
			Positive: standing.Tally > 0,
		})
	}

	board, err := c.messagingService.GetTallyBoardMessage(ctx, &messaging.GetTallyBoardMessageInput{
		Passcode: players.Passcode,
		Rows:     rows,
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to render the tally board.")
	}

	return RespondWithMessage(s, i, board.Message)
}

func (c *MahjongCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	history, err := c.gameService.GetActionHistory(ctx, &game.GetActionHistoryInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, err)
	}

	rendered, err := c.messagingService.GetHistoryMessage(ctx, &messaging.GetHistoryMessageInput{
		Entries: history.Entries,
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to render the history.")
	}

	return RespondWithMessage(s, i, rendered.Message)
}

func (c *MahjongCommand) handleMode(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, userID string) error {
	ctx := context.Background()

	mode := sub.Options[0].StringValue()

	output, err := c.gameService.SetGameMode(ctx, &game.SetGameModeInput{
		HostID:    userID,
		IsShooter: mode == "shooter",
	})
	if err != nil {
		return c.respondWithServiceError(s, i, err)
	}

	if output.Room.IsShooter {
		return RespondWithMessage(s, i, "Shooter mode is on: whoever discards the winning tile pays the full amount.")
	}

	return RespondWithMessage(s, i, "Normal mode is on: everyone shares the loss, with the shooter paying the self-drawn rate.")
}

func (c *MahjongCommand) handleSystem(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, userID string) error {
	ctx := context.Background()

	preset := sub.Options[0].StringValue()

	output, err := c.gameService.SetWinningSystem(ctx, &game.SetWinningSystemInput{
		HostID: userID,
		Preset: preset,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Winning system set to **%s**.", output.Room.System.Name))
}

func (c *MahjongCommand) handleCustom(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, userID string) error {
	ctx := context.Background()

	amounts := sub.Options[0].StringValue()

	_, err := c.gameService.SetCustomWinningSystem(ctx, &game.SetCustomWinningSystemInput{
		HostID:  userID,
		Amounts: amounts,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, err)
	}

	return RespondWithMessage(s, i, "Custom winning system installed.")
}

func (c *MahjongCommand) handleRecord(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, userID string) error {
	ctx := context.Background()

	var (
		eventName string
		winnerID  string
		shooterID string
	)
	for _, opt := range sub.Options {
		switch opt.Name {
		case "event":
			eventName = opt.StringValue()
		case "winner":
			winnerID = opt.UserValue(s).ID
		case "shooter":
			shooterID = opt.UserValue(s).ID
		}
	}

	event, ok := tally.EventByName(eventName)
	if !ok {
		return RespondWithError(s, i, fmt.Sprintf("Unknown event: %s", eventName))
	}

	output, err := c.gameService.RecordWin(ctx, &game.RecordWinInput{
		WinnerID:  winnerID,
		ShooterID: shooterID,
		Event:     event,
	})
	if err != nil {
		log.Printf("Error recording win in channel %s: %v", i.ChannelID, err)
		return c.respondWithServiceError(s, i, err)
	}

	c.mu.Lock()
	c.lastWins[i.ChannelID] = &lastWin{
		entryID:     output.EntryID,
		description: output.Description,
		winnerID:    winnerID,
		shooterID:   shooterID,
		event:       event,
	}
	c.mu.Unlock()

	announcement := renderWinAnnouncement(ctx, c.messagingService, output, winnerID, shooterID, event)

	return RespondWithMessageAndButtons(s, i, announcement, []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Show Tally",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonShowTally,
		},
		discordgo.Button{
			Label:    "Show History",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonShowHistory,
		},
	})
}

func (c *MahjongCommand) handleUndo(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	c.mu.Lock()
	last := c.lastWins[i.ChannelID]
	c.mu.Unlock()

	if last == nil {
		return RespondWithEphemeralMessage(s, i, "Nothing to undo in this channel.")
	}

	_, err := c.gameService.UndoWin(ctx, &game.UndoWinInput{
		WinnerID:  last.winnerID,
		ShooterID: last.shooterID,
		Event:     last.event,
		EntryID:   last.entryID,
	})
	if err != nil {
		log.Printf("Error undoing win in channel %s: %v", i.ChannelID, err)
		return c.respondWithServiceError(s, i, err)
	}

	c.mu.Lock()
	delete(c.lastWins, i.ChannelID)
	c.mu.Unlock()

	undoMsg, err := c.messagingService.GetUndoMessage(ctx, &messaging.GetUndoMessageInput{
		Description: last.description,
	})
	if err != nil {
		return RespondWithMessage(s, i, fmt.Sprintf("Undone: %s", last.description))
	}

	return RespondWithMessage(s, i, undoMsg.Message)
}

func (c *MahjongCommand) respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, serviceErr error) error {
	msg, err := c.messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		Error: serviceErr,
	})
	if err != nil {
		return RespondWithError(s, i, serviceErr.Error())
	}

	return RespondWithError(s, i, msg.Message)
}
