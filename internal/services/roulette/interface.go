package roulette

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rpsbot/internal/services/roulette Service

import "context"

// Service picks a loser from the eligible members of a chat, with no join window
type Service interface {
	// EligiblePool returns the members that may be picked
	EligiblePool(ctx context.Context, input *EligiblePoolInput) (*EligiblePoolOutput, error)

	// RunRound draws one member from the pool and announces it
	RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error)
}
