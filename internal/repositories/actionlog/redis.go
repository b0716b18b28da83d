package actionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis: a hash of entries by ID plus a list
	// holding the append order
	entriesKeyPrefix = "room_log:"
	orderKeyPrefix   = "room_log_order:"
)

// ErrEntryNotFound is returned when a log entry is not found
var ErrEntryNotFound = errors.New("log entry not found")

// Config holds configuration for the Redis action log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed action log repository
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

// AppendEntry appends an entry to a room's action history in Redis
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}
	if input.Passcode == "" || input.Entry.ID == "" {
		return errors.New("passcode and entry ID cannot be empty")
	}

	// Marshal the entry to JSON
	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the entry and record its position
	entriesKey := fmt.Sprintf("%s%s", entriesKeyPrefix, input.Passcode)
	orderKey := fmt.Sprintf("%s%s", orderKeyPrefix, input.Passcode)
	pipe.HSet(ctx, entriesKey, input.Entry.ID, entryJSON)
	pipe.RPush(ctx, orderKey, input.Entry.ID)

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}

// MarkReversed flags an entry as undone in Redis. The flag is set, never
// toggled, so marking twice has the same effect as marking once.
func (r *redisRepository) MarkReversed(ctx context.Context, input *MarkReversedInput) error {
	if input == nil || input.Passcode == "" || input.EntryID == "" {
		return errors.New("input, passcode and entry ID cannot be empty")
	}

	// Get the entry
	entriesKey := fmt.Sprintf("%s%s", entriesKeyPrefix, input.Passcode)
	entryJSON, err := r.client.HGet(ctx, entriesKey, input.EntryID).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to get log entry: %w", err)
	}

	var entry models.LogEntry
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return fmt.Errorf("failed to unmarshal log entry: %w", err)
	}

	// Already reversed, nothing to do
	if entry.Reversed {
		return nil
	}

	entry.Reversed = true
	updatedJSON, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	if err := r.client.HSet(ctx, entriesKey, entry.ID, updatedJSON).Err(); err != nil {
		return fmt.Errorf("failed to mark log entry reversed: %w", err)
	}

	return nil
}

// ListEntries retrieves a room's action history from Redis in append
// order
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.Passcode == "" {
		return nil, errors.New("input and passcode cannot be empty")
	}

	// Get the entry IDs in append order
	orderKey := fmt.Sprintf("%s%s", orderKeyPrefix, input.Passcode)
	entryIDs, err := r.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get log order: %w", err)
	}

	// If there are no entries, return an empty slice
	if len(entryIDs) == 0 {
		return &ListEntriesOutput{
			Entries: []*models.LogEntry{},
		}, nil
	}

	// Get the entries in one round trip
	entriesKey := fmt.Sprintf("%s%s", entriesKeyPrefix, input.Passcode)
	values, err := r.client.HMGet(ctx, entriesKey, entryIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get log entries: %w", err)
	}

	entries := make([]*models.LogEntry, 0, len(entryIDs))
	for i, value := range values {
		entryJSON, ok := value.(string)
		if !ok {
			// Entry was removed between reads
			continue
		}

		var entry models.LogEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log entry %s: %w", entryIDs[i], err)
		}

		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// DeleteLog removes a room's entire action history from Redis
func (r *redisRepository) DeleteLog(ctx context.Context, input *DeleteLogInput) error {
	if input == nil || input.Passcode == "" {
		return errors.New("input and passcode cannot be empty")
	}

	entriesKey := fmt.Sprintf("%s%s", entriesKeyPrefix, input.Passcode)
	orderKey := fmt.Sprintf("%s%s", orderKeyPrefix, input.Passcode)
	if err := r.client.Del(ctx, entriesKey, orderKey).Err(); err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}

	return nil
}
