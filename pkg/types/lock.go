package types

import "time"

// lock request parameters shared by Lock and TryLock
// zero values are left unset on the wire and the server applies its defaults
type LockParams struct {
	WaitTimeout time.Duration // Lock only
	LockTimeout time.Duration
	Size        int32
}

// whole seconds for the wire, sub-second values round up to 1
func Seconds(d time.Duration) int32 {
	if d <= 0 {
		return 0
	}
	s := int32(d / time.Second)
	if d%time.Second != 0 {
		s++
	}
	return s
}
