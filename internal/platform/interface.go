package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/rpsbot/internal/platform Client

import (
	"context"

	"github.com/KirkDiggler/rpsbot/internal/models"
)

// Client is the narrow view of the chat platform the game services depend on
type Client interface {
	// SendMessage posts a message to a chat and returns its ID
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// EditMessage replaces the text of a message the bot sent
	EditMessage(ctx context.Context, input *EditMessageInput) error

	// AnswerCallback acknowledges a button press
	AnswerCallback(ctx context.Context, input *AnswerCallbackInput) error

	// GetMemberCount returns the number of members in a chat, bots included
	GetMemberCount(ctx context.Context, input *GetMemberCountInput) (int, error)

	// GetAdministrators returns the chat administrators, owner included
	GetAdministrators(ctx context.Context, input *GetAdministratorsInput) ([]*models.Member, error)

	// GetMember returns one member or ErrMemberNotFound
	GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error)

	// ListMembers enumerates chat members in bulk or returns ErrUnsupported
	ListMembers(ctx context.Context, input *ListMembersInput) ([]*models.Member, error)
}
