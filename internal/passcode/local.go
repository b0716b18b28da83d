package passcode

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// LocalConfig holds configuration for the local passcode source
type LocalConfig struct {
	// Optional seed for testing
	Seed int64
}

// Local generates passcodes from an in-process random source. Used for
// development and tests when no random.org key is configured.
type Local struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewLocal creates a local passcode source
func NewLocal(cfg *LocalConfig) *Local {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Local{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a new six-lowercase-letter passcode
func (l *Local) Generate(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	letters := make([]byte, Length)
	for i := range letters {
		letters[i] = alphabet[l.random.Intn(len(alphabet))]
	}
	return string(letters), nil
}
