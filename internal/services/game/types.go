package game

import (
	"time"

	"github.com/KirkDiggler/rpsbot/internal/common/clock"
	"github.com/KirkDiggler/rpsbot/internal/common/uuid"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	"github.com/KirkDiggler/rpsbot/internal/random"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/scheduler"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"go.uber.org/zap"
)

const (
	// DefaultGameDuration is the join window when none is configured
	DefaultGameDuration = 30 * time.Second

	// DefaultMinParticipants is the smallest round that produces a winner
	DefaultMinParticipants = 2
)

// Outcome describes how a resolved session ended
type Outcome string

const (
	// OutcomeWinner indicates a participant was drawn
	OutcomeWinner Outcome = "winner"

	// OutcomeNoWinner indicates too few players joined
	OutcomeNoWinner Outcome = "no_winner"
)

// Config holds configuration for the game service
type Config struct {
	// Length of the join window
	GameDuration time.Duration

	// Participants needed to draw a winner
	MinParticipants int

	// Platform dependencies
	Platform  platform.Client
	Messaging messaging.Service

	// Results records resolved rounds. Optional.
	Results results.Repository

	// Service dependencies
	Scheduler     scheduler.Scheduler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Picker        random.Picker

	Logger *zap.Logger
}

// StartSessionInput contains parameters for opening a join window
type StartSessionInput struct {
	// ChatID is the chat the round is played in
	ChatID string

	// InitiatorID is the user starting the round, enrolled automatically
	InitiatorID string

	// InitiatorName is the display name of the initiator
	InitiatorName string
}

// StartSessionOutput contains the result of opening a join window
type StartSessionOutput struct {
	SessionID string

	// AnchorMessageID is the announcement that replies must target
	AnchorMessageID string

	EndsAt time.Time
}

// JoinInput contains parameters for joining a session
type JoinInput struct {
	ChatID string

	UserID string

	UserName string

	// ReplyToMessageID is set when the join came from a reply. It must match the anchor.
	ReplyToMessageID string
}

// JoinOutput contains the result of joining a session
type JoinOutput struct {
	SessionID string

	// ParticipantCount is the number of players after the join
	ParticipantCount int

	// AlreadyJoined indicates the user was already a participant
	AlreadyJoined bool
}

// ResolveInput contains parameters for resolving a session
type ResolveInput struct {
	ChatID string

	// SessionID guards against resolving a newer session. Empty resolves whatever is current.
	SessionID string
}

// ResolveOutput contains the outcome of a resolved session
type ResolveOutput struct {
	SessionID string
	ChatID    string
	Outcome   Outcome

	// WinnerID is set when Outcome is OutcomeWinner
	WinnerID string

	// WinnerName is empty when the winner could not be looked up
	WinnerName string

	ParticipantCount int
}

type GetSessionInput struct {
	ChatID string
}

// GetSessionOutput contains a snapshot of an open session
type GetSessionOutput struct {
	// Session is a copy, safe to read without locking
	Session *models.Session

	Remaining time.Duration
}
