package messaging

import (
	"time"

	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/random"
)

// ErrorReason identifies which game error is being explained to the user
type ErrorReason string

const (
	// ErrorReasonAlreadyActive indicates a round is already collecting players
	ErrorReasonAlreadyActive ErrorReason = "already_active"

	// ErrorReasonNoSession indicates there is no round to join
	ErrorReasonNoSession ErrorReason = "no_session"

	// ErrorReasonExpired indicates the join window has closed
	ErrorReasonExpired ErrorReason = "expired"

	// ErrorReasonInsufficientMembers indicates the chat is too small for a loser round
	ErrorReasonInsufficientMembers ErrorReason = "insufficient_members"

	// ErrorReasonNoEligibleMembers indicates nobody passed the eligibility rules
	ErrorReasonNoEligibleMembers ErrorReason = "no_eligible_members"

	// ErrorReasonPlatform indicates the platform could not be queried
	ErrorReasonPlatform ErrorReason = "platform"

	// ErrorReasonGuildOnly indicates a command was used outside a group chat
	ErrorReasonGuildOnly ErrorReason = "guild_only"

	// ErrorReasonUnknown is used for anything else
	ErrorReasonUnknown ErrorReason = "unknown"
)

// Config holds configuration for the messaging service
type Config struct {
	// Picker selects flavour lines. Defaults to a time seeded roller.
	Picker random.Picker
}

// GetStartMessageInput contains parameters for the round announcement
type GetStartMessageInput struct {
	// InitiatorName is the display name of the member who started the round
	InitiatorName string

	// Duration is the length of the join window
	Duration time.Duration
}

// GetStartMessageOutput contains the round announcement
type GetStartMessageOutput struct {
	Message string
}

// GetJoinMessageInput contains parameters for a join confirmation
type GetJoinMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// ParticipantCount is the number of players after the join
	ParticipantCount int

	// AlreadyJoined indicates the player was already in the round
	AlreadyJoined bool

	// ViaReply indicates the player joined by replying to the announcement
	ViaReply bool
}

// GetJoinMessageOutput contains the join confirmation
type GetJoinMessageOutput struct {
	Message string
}

// GetWinnerMessageInput contains parameters for the round result
type GetWinnerMessageInput struct {
	// WinnerMention is how to address the winner. Empty means nobody won or the name is unknown.
	WinnerMention string

	// ParticipantCount is the number of players in the round
	ParticipantCount int

	// HasWinner indicates the round had enough players to pick a winner
	HasWinner bool

	// MinParticipants is the smallest round that has a winner
	MinParticipants int
}

// GetWinnerMessageOutput contains the round result
type GetWinnerMessageOutput struct {
	Message string
}

// GetLoserMessageInput contains parameters for the loser announcement
type GetLoserMessageInput struct {
	// LoserMention is how to address the selected member
	LoserMention string

	// PoolSize is the number of eligible members drawn from
	PoolSize int
}

// GetLoserMessageOutput contains the loser announcement
type GetLoserMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	Reason ErrorReason

	// Remaining is the time left in an active round, used with ErrorReasonAlreadyActive
	Remaining time.Duration

	// MinMembers is the chat size needed for a loser round, used with ErrorReasonInsufficientMembers
	MinMembers int
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Message string
}

// GetStatusMessageInput contains parameters for the status of an open round
type GetStatusMessageInput struct {
	InitiatorName    string
	ParticipantCount int
	Remaining        time.Duration
}

type GetStatusMessageOutput struct {
	Message string
}

// GetClosedMessageInput contains parameters for a closed announcement
type GetClosedMessageInput struct {
	// ParticipantCount is the number of players in the round
	ParticipantCount int
}

type GetClosedMessageOutput struct {
	Message string
}

// GetStatsMessageInput contains the boards to render. Either may be nil.
type GetStatsMessageInput struct {
	Winners *models.Leaderboard
	Losers  *models.Leaderboard

	// Recent lists the latest rounds, newest first
	Recent []*models.RoundResult
}

type GetStatsMessageOutput struct {
	Message string
}

type GetHelpMessageInput struct {
	// Duration is the configured join window
	Duration time.Duration
}

type GetHelpMessageOutput struct {
	Message string
}
