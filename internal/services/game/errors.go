package game

import (
	"fmt"
	"time"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionAlreadyActive     GameError = "a game is already in progress in this chat"
	ErrNoSession                GameError = "no game in progress"
	ErrSessionExpired           GameError = "game has expired"
	ErrNotAnchorMessage         GameError = "reply does not target the game announcement"
	ErrSessionStillOpen         GameError = "game is still accepting players"
	ErrInsufficientParticipants GameError = "not enough participants to pick a winner"
	ErrInvalidInput             GameError = "chat ID and user ID are required"
	ErrNilConfig                GameError = "config cannot be nil"
	ErrNilPlatform              GameError = "platform client cannot be nil"
	ErrNilMessaging             GameError = "messaging service cannot be nil"
	ErrNilScheduler             GameError = "scheduler cannot be nil"
	ErrNilClock                 GameError = "clock cannot be nil"
	ErrNilUUIDGenerator         GameError = "UUID generator cannot be nil"
	ErrNilPicker                GameError = "picker cannot be nil"
)

// ActiveSessionError is returned by StartSession while the chat's current
// game is still open. It matches ErrSessionAlreadyActive with errors.Is.
type ActiveSessionError struct {
	Remaining time.Duration
}

func (e *ActiveSessionError) Error() string {
	return fmt.Sprintf("%s (%s remaining)", ErrSessionAlreadyActive, e.Remaining.Round(time.Millisecond))
}

func (e *ActiveSessionError) Unwrap() error {
	return ErrSessionAlreadyActive
}
