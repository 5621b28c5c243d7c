package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/rpsbot/internal/common/clock Clock

// Clock tells the session manager what time it is
type Clock interface {
	Now() time.Time
}

// System implements Clock using the wall clock
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current time, including the monotonic reading used for expiry comparisons
func (c *System) Now() time.Time {
	return time.Now()
}
