package results

import "github.com/KirkDiggler/rpsbot/internal/models"

type RecordResultInput struct {
	Result *models.RoundResult
}

type GetResultInput struct {
	ResultID string
}

type GetRecentResultsInput struct {
	ChatID string

	// Limit caps the number of results, defaults to 10
	Limit int
}

type GetRecentResultsOutput struct {
	Results []*models.RoundResult
}

type GetLeaderboardInput struct {
	ChatID string

	// Kind selects winners or losers
	Kind models.RoundKind

	// Limit caps the number of entries, defaults to 10
	Limit int
}
