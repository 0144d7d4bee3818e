package types

import "time"

// how long before expiry a lease is refreshed
const RefreshMargin = 30 * time.Second

// a lease is what a client needs to keep a held lock alive
// the key proves ownership, the timeout is sent back unchanged on every renew
type Lease struct {
	Name    string
	Key     string
	Timeout time.Duration
}

// refresh interval is the timeout minus the margin, never below floor
// e.g. 40s timeout with a 1s floor refreshes every 10s
func (l Lease) RefreshInterval(floor time.Duration) time.Duration {
	interval := l.Timeout - RefreshMargin
	if interval < floor {
		return floor
	}
	return interval
}
