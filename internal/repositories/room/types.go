package room

import "github.com/KirkDiggler/mahjong-tally/internal/models"

// SaveRoomInput contains parameters for saving a room
type SaveRoomInput struct {
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	Passcode string
}

// GetRoomByHostInput contains parameters for retrieving a room by host
type GetRoomByHostInput struct {
	HostID string
}

// DeleteRoomInput contains parameters for removing a room
type DeleteRoomInput struct {
	Passcode string
}
