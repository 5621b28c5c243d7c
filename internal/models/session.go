package models

import (
	"sort"
	"time"
)

// Session is one timed join window for a chat
type Session struct {
	// ID uniquely identifies this session instance
	ID string

	// ChatID is the chat the session belongs to
	ChatID string

	// AnchorMessageID is the announcement message that replies must target.
	// Empty until the announcement has been sent.
	AnchorMessageID string

	// InitiatorID is the user who started the round
	InitiatorID string

	// InitiatorName is the display name of the initiator
	InitiatorName string

	// Participants is the set of user IDs that joined
	Participants map[string]struct{}

	// StartedAt is when the session was created
	StartedAt time.Time

	// EndsAt is when the join window closes
	EndsAt time.Time
}

// NewSession creates a session with the initiator already enrolled
func NewSession(id, chatID, initiatorID, initiatorName string, startedAt time.Time, duration time.Duration) *Session {
	s := &Session{
		ID:            id,
		ChatID:        chatID,
		InitiatorID:   initiatorID,
		InitiatorName: initiatorName,
		Participants:  make(map[string]struct{}),
		StartedAt:     startedAt,
		EndsAt:        startedAt.Add(duration),
	}
	s.AddParticipant(initiatorID)
	return s
}

// AddParticipant enrolls a user. It returns false if the user was already enrolled.
func (s *Session) AddParticipant(userID string) bool {
	if s.Participants == nil {
		s.Participants = make(map[string]struct{})
	}
	if _, ok := s.Participants[userID]; ok {
		return false
	}
	s.Participants[userID] = struct{}{}
	return true
}

// ParticipantCount returns the number of distinct participants
func (s *Session) ParticipantCount() int {
	return len(s.Participants)
}

// ParticipantIDs returns the participants in sorted order
func (s *Session) ParticipantIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for id := range s.Participants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsOpen reports whether joins are still accepted at now
func (s *Session) IsOpen(now time.Time) bool {
	return now.Before(s.EndsAt)
}

// Remaining returns the time left in the join window, never negative
func (s *Session) Remaining(now time.Time) time.Duration {
	if !s.IsOpen(now) {
		return 0
	}
	return s.EndsAt.Sub(now)
}

// Clone returns a deep copy safe to hand out of the session manager
func (s *Session) Clone() *Session {
	cp := *s
	cp.Participants = make(map[string]struct{}, len(s.Participants))
	for id := range s.Participants {
		cp.Participants[id] = struct{}{}
	}
	return &cp
}
