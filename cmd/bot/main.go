package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/mahjong-tally/internal/handlers/discord"
	"github.com/KirkDiggler/mahjong-tally/internal/passcode"
	"github.com/KirkDiggler/mahjong-tally/internal/repositories/actionlog"
	"github.com/KirkDiggler/mahjong-tally/internal/repositories/player"
	"github.com/KirkDiggler/mahjong-tally/internal/repositories/room"
	gameService "github.com/KirkDiggler/mahjong-tally/internal/services/game"
	"github.com/KirkDiggler/mahjong-tally/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	roomRepo, err := room.NewRedis(&room.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create room repository: %v", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	actionLogRepo, err := actionlog.NewRedis(&actionlog.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create action log repository: %v", err)
	}

	// Pick a passcode source: random.org when an API key is configured,
	// local generation otherwise
	var passcodeSource passcode.Source
	if apiKey := getEnv("RANDOM_ORG_API_KEY", ""); apiKey != "" {
		passcodeSource, err = passcode.NewRandomOrg(&passcode.RandomOrgConfig{
			APIKey: apiKey,
		})
		if err != nil {
			log.Fatalf("Failed to create random.org passcode source: %v", err)
		}
	} else {
		log.Println("RANDOM_ORG_API_KEY not set, generating passcodes locally")
		passcodeSource = passcode.NewLocal(&passcode.LocalConfig{})
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		RoomRepo:       roomRepo,
		PlayerRepo:     playerRepo,
		ActionLogRepo:  actionLogRepo,
		PasscodeSource: passcodeSource,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize messaging service
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            discordToken,
		ApplicationID:    applicationID,
		GuildID:          guildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
