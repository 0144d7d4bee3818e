package ldlmtest

import (
	"sync"
	"time"

	"github.com/google/uuid"
	ltime "github.com/pixperk/ldlm/pkg/time"
	"github.com/pixperk/ldlm/pkg/types"
)

// a held lock, possibly with several holders when size > 1
type lockState struct {
	size    int32
	holders map[string]time.Duration // key -> deadline, 0 never expires
}

// in-memory lock table
// expiry is lazy: expired holders are dropped whenever the lock is touched
type store struct {
	mu    sync.Mutex
	locks map[string]*lockState

	// closed and replaced whenever a holder goes away
	changed chan struct{}

	clock *ltime.Clock
}

func newStore() *store {
	return &store{
		locks:   make(map[string]*lockState),
		changed: make(chan struct{}),
		clock:   ltime.NewClock(),
	}
}

// caller must hold mu
func (s *store) notify() {
	close(s.changed)
	s.changed = make(chan struct{})
}

// caller must hold mu
func (s *store) expire(name string) *lockState {
	l, ok := s.locks[name]
	if !ok {
		return nil
	}

	dropped := false
	for key, deadline := range l.holders {
		if deadline > 0 && s.clock.Expired(deadline) {
			delete(l.holders, key)
			dropped = true
		}
	}
	if len(l.holders) == 0 {
		delete(s.locks, name)
		l = nil
	}
	if dropped {
		s.notify()
	}
	return l
}

func (s *store) deadline(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return 0
	}
	return s.clock.ExpiresAt(timeout)
}

// tryAcquire takes a slot of name if one is free. The returned channel is
// closed the next time a slot may have been freed.
func (s *store) tryAcquire(name string, size int32, timeout time.Duration) (string, bool, <-chan struct{}, error) {
	if size < 1 {
		return "", false, nil, types.ErrInvalidLockSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.expire(name)
	if l == nil {
		l = &lockState{size: size, holders: make(map[string]time.Duration)}
		s.locks[name] = l
	}
	if l.size != size {
		return "", false, nil, types.ErrLockSizeMismatch
	}
	if int32(len(l.holders)) >= l.size {
		return "", false, s.changed, nil
	}

	key := uuid.NewString()
	l.holders[key] = s.deadline(timeout)
	return key, true, nil, nil
}

func (s *store) release(name, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.expire(name)
	if l == nil {
		return types.ErrLockDoesNotExist
	}
	if _, ok := l.holders[key]; !ok {
		return types.ErrInvalidLockKey
	}

	delete(l.holders, key)
	if len(l.holders) == 0 {
		delete(s.locks, name)
	}
	s.notify()
	return nil
}

func (s *store) renew(name, key string, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.expire(name)
	if l == nil {
		return types.ErrLockDoesNotExistOrInvalidKey
	}
	if _, ok := l.holders[key]; !ok {
		return types.ErrLockDoesNotExistOrInvalidKey
	}

	l.holders[key] = s.deadline(timeout)
	return nil
}

func (s *store) holders(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.expire(name)
	if l == nil {
		return 0
	}
	return len(l.holders)
}
