package roulette

import (
	"github.com/KirkDiggler/rpsbot/internal/common/clock"
	"github.com/KirkDiggler/rpsbot/internal/common/uuid"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	"github.com/KirkDiggler/rpsbot/internal/random"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"go.uber.org/zap"
)

const (
	// DefaultMinMembers is the smallest chat a loser round runs in, the bot included
	DefaultMinMembers = 3

	// DefaultEnumerationLimit is the largest chat whose members are listed in bulk
	DefaultEnumerationLimit = 200
)

// Config holds configuration for the roulette service
type Config struct {
	// Chats reporting fewer members are rejected before any other query
	MinMembers int

	// Chats above this size skip bulk listing and draw from the administrators
	EnumerationLimit int

	// ExcludeAdmins keeps administrators out of the bulk listed pool
	ExcludeAdmins bool

	Platform  platform.Client
	Messaging messaging.Service

	// Results records the drawn loser. Optional.
	Results results.Repository

	Picker        random.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	Logger *zap.Logger
}

type EligiblePoolInput struct {
	ChatID string
}

// EligiblePoolOutput contains the members that may be picked
type EligiblePoolOutput struct {
	Members []*models.Member

	// FromAdministrators indicates bulk listing was unavailable or empty
	FromAdministrators bool
}

type RunRoundInput struct {
	ChatID string
}

// RunRoundOutput contains the drawn loser
type RunRoundOutput struct {
	Loser *models.Member

	PoolSize int
}
