package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
	"github.com/KirkDiggler/mahjong-tally/internal/services/game"
	"github.com/KirkDiggler/mahjong-tally/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	messagingService messaging.Service
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Messaging service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	mahjongCmd := NewMahjongCommand(b.gameService, b.messagingService)
	if err := b.RegisterCommand(mahjongCmd); err != nil {
		return fmt.Errorf("failed to register mahjong command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// Button IDs
const (
	ButtonShowTally   = "show_tally"
	ButtonShowHistory = "show_history"
)

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks and other component interactions
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	userID := i.Member.User.ID

	switch customID {
	case ButtonShowTally:
		return b.handleShowTallyButton(s, i, userID)
	case ButtonShowHistory:
		return b.handleShowHistoryButton(s, i, userID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleShowTallyButton renders the caller's room standings
func (b *Bot) handleShowTallyButton(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	players, err := b.gameService.GetRoomPlayers(ctx, &game.GetRoomPlayersInput{
		PlayerID: userID,
	})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	rows := make([]messaging.TallyRow, 0, len(players.Standings))
	for _, standing := range players.Standings {
		rows = append(rows, messaging.TallyRow{
			Name:     standing.Name,
			Amount:   paytable.FormatAmount(standing.Tally),
			Positive: standing.Tally > 0,
		})
	}

	board, err := b.messagingService.GetTallyBoardMessage(ctx, &messaging.GetTallyBoardMessageInput{
		Passcode: players.Passcode,
		Rows:     rows,
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to render the tally board.")
	}

	return RespondWithEphemeralMessage(s, i, board.Message)
}

// handleShowHistoryButton renders the caller's room action history
func (b *Bot) handleShowHistoryButton(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	history, err := b.gameService.GetActionHistory(ctx, &game.GetActionHistoryInput{
		PlayerID: userID,
	})
	if err != nil {
		return b.respondWithServiceError(s, i, err)
	}

	rendered, err := b.messagingService.GetHistoryMessage(ctx, &messaging.GetHistoryMessageInput{
		Entries: history.Entries,
	})
	if err != nil {
		return RespondWithError(s, i, "Failed to render the history.")
	}

	return RespondWithEphemeralMessage(s, i, rendered.Message)
}

// respondWithServiceError translates a service error into a friendly
// ephemeral response
func (b *Bot) respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, serviceErr error) error {
	msg, err := b.messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		Error: serviceErr,
	})
	if err != nil {
		return RespondWithError(s, i, serviceErr.Error())
	}

	return RespondWithError(s, i, msg.Message)
}
