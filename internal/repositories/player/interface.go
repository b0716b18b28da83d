package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mahjong-tally/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetRoomPlayers retrieves the players in a room, in join order
	GetRoomPlayers(ctx context.Context, input *GetRoomPlayersInput) (*GetRoomPlayersOutput, error)

	// UpdatePlayerRoom moves a player into a room (resetting their
	// tally to zero) or, with an empty passcode, out of their current room
	UpdatePlayerRoom(ctx context.Context, input *UpdatePlayerRoomInput) error

	// ApplyTallyDelta adds a signed amount to a player's tally
	ApplyTallyDelta(ctx context.Context, input *ApplyTallyDeltaInput) error
}
