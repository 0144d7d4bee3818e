package client

import (
	"context"
	"time"

	"github.com/pixperk/ldlm/pkg/types"
)

// Lock is the result of a Lock or TryLock call. The key proves ownership
// and is needed to unlock or refresh.
type Lock struct {
	client *Client
	name   string
	key    string
	locked bool
	size   int32
}

func (l *Lock) Name() string {
	return l.name
}

func (l *Lock) Key() string {
	return l.key
}

func (l *Lock) Locked() bool {
	return l.locked
}

// size requested at acquisition, 0 means the server default
func (l *Lock) Size() int32 {
	return l.size
}

func (l *Lock) Unlock(ctx context.Context) error {
	if !l.locked {
		return types.ErrNotLocked
	}
	return l.client.Unlock(ctx, l.name, l.key)
}

func (l *Lock) Refresh(ctx context.Context, lockTimeout time.Duration) (*Lock, error) {
	if !l.locked {
		return nil, types.ErrNotLocked
	}
	return l.client.RefreshLock(ctx, l.name, l.key, lockTimeout)
}
