package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rpsbot/internal/services/messaging Service

import "context"

// Service renders the texts the bot posts for game events
type Service interface {
	// GetStartMessage returns the announcement for a new round
	GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error)

	// GetJoinMessage returns the confirmation for a join attempt
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetWinnerMessage returns the announcement for a resolved round
	GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error)

	// GetLoserMessage returns the announcement for a loser round
	GetLoserMessage(ctx context.Context, input *GetLoserMessageInput) (*GetLoserMessageOutput, error)

	// GetErrorMessage returns a user-friendly message for a game error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetStatusMessage describes the round currently collecting players
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetClosedMessage returns the replacement text for a resolved round's announcement
	GetClosedMessage(ctx context.Context, input *GetClosedMessageInput) (*GetClosedMessageOutput, error)

	// GetStatsMessage renders the winners and losers boards of a chat
	GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error)

	// GetHelpMessage returns the help text
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)
}
