package models

// Player represents a registered chat user
type Player struct {
	// ID is the chat platform user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// Username is the platform handle of the player
	Username string

	// Passcode identifies the room the player is currently in, empty
	// when the player is not in a room
	Passcode string

	// Tally is the player's running balance in the current room, in
	// cents
	Tally int64
}
