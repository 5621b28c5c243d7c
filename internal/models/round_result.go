package models

import "time"

// RoundKind describes how a round ended
type RoundKind string

const (
	// RoundKindWinner indicates a join round that produced a winner
	RoundKindWinner RoundKind = "winner"

	// RoundKindNoWinner indicates a join round with too few participants
	RoundKindNoWinner RoundKind = "no_winner"

	// RoundKindLoser indicates a loser round drawn from the eligible members
	RoundKindLoser RoundKind = "loser"
)

// RoundResult records the outcome of a resolved round
type RoundResult struct {
	// ID is the unique identifier for the result
	ID string

	// ChatID is the chat the round was played in
	ChatID string

	// SessionID is the session that produced the result, empty for loser rounds
	SessionID string

	// Kind is how the round ended
	Kind RoundKind

	// UserID is the selected user, empty when nobody was selected
	UserID string

	// UserName is the selected user's display name at the time of the round
	UserName string

	// ParticipantCount is the number of participants, or the pool size for loser rounds
	ParticipantCount int

	// ResolvedAt is when the round was resolved
	ResolvedAt time.Time
}
