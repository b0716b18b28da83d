package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mahjong-tally/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/mahjong-tally/internal/models"
)

// Repository defines the interface for room data persistence
type Repository interface {
	// SaveRoom persists a room
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by passcode
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomByHost retrieves a room by its host's player ID
	GetRoomByHost(ctx context.Context, input *GetRoomByHostInput) (*models.Room, error)

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
