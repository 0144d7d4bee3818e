package time

import "time"

// clock measures monotonic time since it was created
// time.Since uses the monotonic reading so wall clock jumps don't affect it
type Clock struct {
	startTime time.Time
}

func NewClock() *Clock {
	return &Clock{
		startTime: time.Now(),
	}
}

// duration since the clock started
func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

// returns the expiration given a TTL, relative to clock start
func (c *Clock) ExpiresAt(ttl time.Duration) time.Duration {
	return c.Elapsed() + ttl
}

// reports whether a deadline returned by ExpiresAt has passed
func (c *Clock) Expired(deadline time.Duration) bool {
	return c.Elapsed() >= deadline
}
