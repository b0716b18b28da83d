package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "player:"
	roomMembersKeyPrefix = "room_members:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player

	// Ensure the player has an ID
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	// Marshal the player to JSON
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	if err := r.client.Set(ctx, playerKey, playerJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// Get the player from Redis
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	// Unmarshal the player from JSON
	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetRoomPlayers retrieves the players in a room from Redis, ordered by
// join time
func (r *redisRepository) GetRoomPlayers(ctx context.Context, input *GetRoomPlayersInput) (*GetRoomPlayersOutput, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	// Get the member IDs in join order
	membersKey := fmt.Sprintf("%s%s", roomMembersKeyPrefix, input.Passcode)
	playerIDs, err := r.client.ZRange(ctx, membersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get member IDs for room: %w", err)
	}

	// If there are no players, return an empty slice
	if len(playerIDs) == 0 {
		return &GetRoomPlayersOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Get all player records using a pipeline
	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, len(playerIDs))

	for i, playerID := range playerIDs {
		playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
		playerCommands[i] = pipe.Get(ctx, playerKey)
	}

	// Execute the pipeline
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	// Process the results, preserving join order
	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player record was deleted between getting the IDs
				// and fetching the player
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		players = append(players, &player)
	}

	return &GetRoomPlayersOutput{
		Players: players,
	}, nil
}

// UpdatePlayerRoom moves a player into or out of a room in Redis. Joining
// a room resets the player's tally to zero; leaving only clears the
// passcode.
func (r *redisRepository) UpdatePlayerRoom(ctx context.Context, input *UpdatePlayerRoomInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	// Get the player first
	player, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// If the player is currently in a room, remove them from that
	// room's member index
	if player.Passcode != "" && player.Passcode != input.Passcode {
		oldMembersKey := fmt.Sprintf("%s%s", roomMembersKeyPrefix, player.Passcode)
		pipe.ZRem(ctx, oldMembersKey, player.ID)
	}

	// Update the player's room
	player.Passcode = input.Passcode
	if input.Passcode != "" {
		player.Tally = 0
	}

	// Marshal the updated player
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	// Save the updated player
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	pipe.Set(ctx, playerKey, playerJSON, 0)

	// If the player is joining a room, add them to that room's member
	// index scored by join time
	if input.Passcode != "" {
		newMembersKey := fmt.Sprintf("%s%s", roomMembersKeyPrefix, input.Passcode)
		pipe.ZAdd(ctx, newMembersKey, redis.Z{
			Score:  float64(time.Now().UnixNano()),
			Member: player.ID,
		})
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update player room: %w", err)
	}

	return nil
}

// ApplyTallyDelta adds a signed amount to a player's tally in Redis
func (r *redisRepository) ApplyTallyDelta(ctx context.Context, input *ApplyTallyDeltaInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	// Get the player first
	player, err := r.GetPlayer(ctx, &GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return err
	}

	player.Tally += input.Delta

	// Marshal the updated player
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	// Save the updated player
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	if err := r.client.Set(ctx, playerKey, playerJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to apply tally delta: %w", err)
	}

	return nil
}
