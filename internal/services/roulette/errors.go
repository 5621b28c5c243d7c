package roulette

import "fmt"

// RouletteError is a custom error type for loser round errors
type RouletteError string

// Error implements the error interface
func (e RouletteError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientMembers RouletteError = "not enough members in chat"
	ErrPlatformQueryFailed RouletteError = "could not enumerate chat members"
	ErrNoEligibleMembers   RouletteError = "no eligible members"
	ErrInvalidInput        RouletteError = "chat ID is required"
	ErrNilConfig           RouletteError = "config cannot be nil"
	ErrNilPlatform         RouletteError = "platform client cannot be nil"
	ErrNilMessaging        RouletteError = "messaging service cannot be nil"
	ErrNilPicker           RouletteError = "picker cannot be nil"
	ErrNilClock            RouletteError = "clock cannot be nil"
	ErrNilUUIDGenerator    RouletteError = "UUID generator cannot be nil"
)

// InsufficientMembersError is returned when a chat is below the configured
// minimum. It matches ErrInsufficientMembers with errors.Is.
type InsufficientMembersError struct {
	MemberCount int
	MinMembers  int
}

func (e *InsufficientMembersError) Error() string {
	return fmt.Sprintf("%s (%d of %d)", ErrInsufficientMembers, e.MemberCount, e.MinMembers)
}

func (e *InsufficientMembersError) Unwrap() error {
	return ErrInsufficientMembers
}
