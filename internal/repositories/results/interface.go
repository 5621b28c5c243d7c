package results

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rpsbot/internal/repositories/results Repository

import (
	"context"

	"github.com/KirkDiggler/rpsbot/internal/models"
)

// Repository defines the interface for the round outcome ledger
type Repository interface {
	// RecordResult persists a resolved round and updates the chat tallies
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetResult retrieves a recorded round by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.RoundResult, error)

	// GetRecentResults retrieves the most recent rounds of a chat, newest first
	GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error)

	// GetLeaderboard retrieves the ranked tally of a round kind in a chat
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)
}
