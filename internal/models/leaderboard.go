package models

// LeaderboardEntry is one user's tally in a chat
type LeaderboardEntry struct {
	// UserID is the platform user identifier
	UserID string

	// UserName is the most recently recorded display name
	UserName string

	// Count is the number of rounds the user was selected in
	Count int
}

// Leaderboard is the ranked tally of one round kind in a chat
type Leaderboard struct {
	// ChatID is the chat the tally belongs to
	ChatID string

	// Kind is the round kind being tallied
	Kind RoundKind

	// Entries is ordered by Count, highest first
	Entries []*LeaderboardEntry
}
