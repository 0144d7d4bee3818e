package types

// rpc selector for the retrying caller
type Method uint

const (
	MethodLock Method = iota + 1
	MethodTryLock
	MethodUnlock
	MethodRenew
)

func (m Method) String() string {
	switch m {
	case MethodLock:
		return "Lock"
	case MethodTryLock:
		return "TryLock"
	case MethodUnlock:
		return "Unlock"
	case MethodRenew:
		return "Renew"
	default:
		return "Unknown"
	}
}
