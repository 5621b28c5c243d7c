package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rpsbot/internal/services/game Service

import "context"

// Service manages at most one timed join window per chat
type Service interface {
	// StartSession opens a join window in a chat and announces it
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// Join adds a user to the chat's open session
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Resolve closes an expired session, picks the outcome and announces it.
	// A session is resolved at most once. A round with too few players returns
	// its output together with ErrInsufficientParticipants.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// GetSession returns a snapshot of the chat's open session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// Close cancels every pending resolution timer and waits for background announcements
	Close()
}
