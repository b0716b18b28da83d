// Package passcode provides room passcode generation: six lowercase
// letters from an unbiased random source.
package passcode

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/mahjong-tally/internal/passcode Source

import "context"

// Length is the number of letters in a passcode.
const Length = 6

// alphabet is the passcode character set.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Source generates room passcodes.
type Source interface {
	// Generate returns a new six-lowercase-letter passcode
	Generate(ctx context.Context) (string, error)
}
