package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rpsbot/internal/services/game"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"github.com/KirkDiggler/rpsbot/internal/services/roulette"
	"go.uber.org/zap"
)

// errGuildOnly marks commands used outside a server channel
var errGuildOnly = errors.New("command requires a server channel")

// errorMessageInput maps service errors to the message shown in the chat,
// carrying the remaining time or member threshold the error reports
func errorMessageInput(err error) *messaging.GetErrorMessageInput {
	var (
		active *game.ActiveSessionError
		small  *roulette.InsufficientMembersError
	)
	switch {
	case errors.As(err, &active):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonAlreadyActive, Remaining: active.Remaining}
	case errors.Is(err, game.ErrSessionAlreadyActive):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonAlreadyActive}
	case errors.Is(err, game.ErrNoSession), errors.Is(err, game.ErrNotAnchorMessage):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonNoSession}
	case errors.Is(err, game.ErrSessionExpired):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonExpired}
	case errors.As(err, &small):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonInsufficientMembers, MinMembers: small.MinMembers}
	case errors.Is(err, roulette.ErrInsufficientMembers):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonInsufficientMembers}
	case errors.Is(err, roulette.ErrNoEligibleMembers):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonNoEligibleMembers}
	case errors.Is(err, roulette.ErrPlatformQueryFailed):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonPlatform}
	case errors.Is(err, errGuildOnly):
		return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonGuildOnly}
	}
	return &messaging.GetErrorMessageInput{Reason: messaging.ErrorReasonUnknown}
}

// errorText renders the chat message for a failed command or button press
func errorText(ctx context.Context, svc messaging.Service, log *zap.Logger, err error) (string, error) {
	input := errorMessageInput(err)
	if input.Reason == messaging.ErrorReasonUnknown {
		log.Error("unexpected error", zap.Error(err))
	}

	msg, renderErr := svc.GetErrorMessage(ctx, input)
	if renderErr != nil {
		return "", fmt.Errorf("failed to render error message: %w", renderErr)
	}
	return msg.Message, nil
}
