package player

import "github.com/KirkDiggler/mahjong-tally/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetRoomPlayersInput contains parameters for retrieving a room's players
type GetRoomPlayersInput struct {
	Passcode string
}

// GetRoomPlayersOutput contains the result of retrieving a room's players
type GetRoomPlayersOutput struct {
	Players []*models.Player
}

// UpdatePlayerRoomInput contains parameters for moving a player between rooms
type UpdatePlayerRoomInput struct {
	PlayerID string
	Passcode string
}

// ApplyTallyDeltaInput contains parameters for adjusting a player's tally
type ApplyTallyDeltaInput struct {
	PlayerID string
	Delta    int64
}
