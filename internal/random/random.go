package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/rpsbot/internal/random Picker

// Picker draws uniformly distributed indexes
type Picker interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Roller is a Picker backed by math/rand. Safe for concurrent use.
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for reproducible draws in tests
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = newSeed()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (r *Roller) Intn(n int) int {
	if n < 1 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
