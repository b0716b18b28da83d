package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix = "room:"
	hostKeyPrefix = "room_host:"
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

// SaveRoom persists a room to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	room := input.Room
	if room.Passcode == "" {
		return errors.New("room passcode cannot be empty")
	}

	// Marshal the room to JSON
	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the room
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, room.Passcode)
	pipe.Set(ctx, roomKey, roomJSON, 0)

	// Update the host-to-passcode index
	if room.HostID != "" {
		hostKey := fmt.Sprintf("%s%s", hostKeyPrefix, room.HostID)
		pipe.Set(ctx, hostKey, room.Passcode, 0)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by passcode from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	// Get the room from Redis
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Passcode)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	// Unmarshal the room from JSON
	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// GetRoomByHost retrieves a room by host ID from Redis
func (r *redisRepository) GetRoomByHost(ctx context.Context, input *GetRoomByHostInput) (*models.Room, error) {
	if input == nil || input.HostID == "" {
		return nil, errors.New("input and host ID cannot be empty")
	}

	// Get the passcode from the host index
	hostKey := fmt.Sprintf("%s%s", hostKeyPrefix, input.HostID)
	passcode, err := r.client.Get(ctx, hostKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get passcode for host: %w", err)
	}

	// Get the room using the passcode
	return r.GetRoom(ctx, &GetRoomInput{
		Passcode: passcode,
	})
}

// DeleteRoom removes a room from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.Passcode == "" {
		return errors.New("input and passcode cannot be empty")
	}

	// Get the room first to find its host index
	room, err := r.GetRoom(ctx, &GetRoomInput{
		Passcode: input.Passcode,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Delete the room
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Passcode)
	pipe.Del(ctx, roomKey)

	// Delete the host index
	if room.HostID != "" {
		hostKey := fmt.Sprintf("%s%s", hostKeyPrefix, room.HostID)
		pipe.Del(ctx, hostKey)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
