package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pb "github.com/pixperk/ldlm/api/v1"
	"github.com/pixperk/ldlm/pkg/metrics"
	ltime "github.com/pixperk/ldlm/pkg/time"
	"github.com/pixperk/ldlm/pkg/types"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/atomic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	conn   *grpc.ClientConn
	client pb.LDLMClient

	opts    options
	logger  *slog.Logger
	caller  *caller
	refresh *refreshScheduler

	// acquire time of locks held through this client, by key
	held   *xsync.MapOf[string, *ltime.Clock]
	closed *atomic.Bool
}

// New connects to an ldlm server at addr. The connection is lazy, the first
// rpc dials it.
func New(addr string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if o.tls != nil {
		creds, err := transportCredentials(o.tls)
		if err != nil {
			return nil, fmt.Errorf("tls config: %w", err)
		}
		dialOpts = []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	}
	if o.password != "" {
		dialOpts = append(dialOpts, grpc.WithChainUnaryInterceptor(authInterceptor(o.password)))
	}
	dialOpts = append(dialOpts, o.dialOptions...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return newClient(conn, pb.NewLDLMClient(conn), o), nil
}

func newClient(conn *grpc.ClientConn, stub pb.LDLMClient, o options) *Client {
	logger := o.logger
	if logger == nil {
		logger = slog.Default().With("component", "ldlm")
	}

	c := &Client{
		conn:   conn,
		client: stub,
		opts:   o,
		logger: logger,
		caller: &caller{policy: o.retry, logger: logger},
		held:   xsync.NewMapOf[string, *ltime.Clock](),
		closed: atomic.NewBool(false),
	}
	c.refresh = newRefreshScheduler(c.renewLease, o.minRefreshInterval, logger, o.onRefreshError)
	return c
}

// Lock blocks on the server until the lock is acquired or the wait timeout
// passes. A wait timeout is not an error, the returned lock reports Locked() false.
func (c *Client) Lock(ctx context.Context, name string, opts ...LockOption) (*Lock, error) {
	if c.closed.Load() {
		return nil, types.ErrClientClosed
	}

	p := c.lockParams(opts)
	req := &pb.LockRequest{Name: name}
	if s := types.Seconds(p.WaitTimeout); s > 0 {
		req.WaitTimeoutSeconds = &s
	}
	if s := types.Seconds(p.LockTimeout); s > 0 {
		req.LockTimeoutSeconds = &s
	}
	if p.Size > 0 {
		size := p.Size
		req.Size = &size
	}

	resp, err := invoke(ctx, c.caller, types.MethodLock, func(ctx context.Context) (*pb.LockResponse, error) {
		return c.client.Lock(ctx, req)
	})
	if errors.Is(err, types.ErrLockWaitTimeout) {
		metrics.LockAcquireTotal.WithLabelValues(types.MethodLock.String(), "not_acquired").Inc()
		c.logger.Debug("lock wait timed out", "lock", name, "wait_timeout", p.WaitTimeout)
		return &Lock{client: c, name: name, size: p.Size}, nil
	}
	if err != nil {
		return nil, err
	}

	return c.acquired(types.MethodLock, name, resp, p)
}

// TryLock returns at once with Locked() false if the lock is held elsewhere.
func (c *Client) TryLock(ctx context.Context, name string, opts ...LockOption) (*Lock, error) {
	if c.closed.Load() {
		return nil, types.ErrClientClosed
	}

	p := c.lockParams(opts)
	req := &pb.TryLockRequest{Name: name}
	if s := types.Seconds(p.LockTimeout); s > 0 {
		req.LockTimeoutSeconds = &s
	}
	if p.Size > 0 {
		size := p.Size
		req.Size = &size
	}

	resp, err := invoke(ctx, c.caller, types.MethodTryLock, func(ctx context.Context) (*pb.LockResponse, error) {
		return c.client.TryLock(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	return c.acquired(types.MethodTryLock, name, resp, p)
}

func (c *Client) lockParams(opts []LockOption) types.LockParams {
	p := types.LockParams{LockTimeout: c.opts.defaultLockTimeout}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// acquired builds the handle and starts the refresh timer for a held lock.
// If the timer can't start the held lock is returned along with the error.
func (c *Client) acquired(method types.Method, name string, resp *pb.LockResponse, p types.LockParams) (*Lock, error) {
	if resp.GetName() != "" {
		name = resp.GetName()
	}
	l := &Lock{
		client: c,
		name:   name,
		key:    resp.GetKey(),
		locked: resp.GetLocked(),
		size:   p.Size,
	}

	if !l.locked {
		metrics.LockAcquireTotal.WithLabelValues(method.String(), "not_acquired").Inc()
		c.logger.Debug("lock not acquired", "lock", name)
		return l, nil
	}

	metrics.LockAcquireTotal.WithLabelValues(method.String(), "acquired").Inc()
	if _, loaded := c.held.LoadOrStore(l.key, ltime.NewClock()); !loaded {
		metrics.LocksHeld.Inc()
	}
	c.logger.Info("lock acquired", "lock", name, "lock_timeout", p.LockTimeout)

	if p.LockTimeout > 0 && c.opts.autoRefresh {
		lease := types.Lease{
			Name:    l.name,
			Key:     l.key,
			Timeout: time.Duration(types.Seconds(p.LockTimeout)) * time.Second,
		}
		if err := c.refresh.start(lease); err != nil {
			return l, fmt.Errorf("start refresh: %w", err)
		}
	}

	return l, nil
}

// Unlock stops the refresh timer for name, if any, then releases the lock.
func (c *Client) Unlock(ctx context.Context, name, key string) error {
	if c.closed.Load() {
		return types.ErrClientClosed
	}

	if c.refresh.cancelTimer(name) {
		c.logger.Debug("refresh timer stopped before unlock", "lock", name)
	}
	return c.unlock(ctx, name, key)
}

func (c *Client) unlock(ctx context.Context, name, key string) error {
	resp, err := invoke(ctx, c.caller, types.MethodUnlock, func(ctx context.Context) (*pb.UnlockResponse, error) {
		return c.client.Unlock(ctx, &pb.UnlockRequest{Name: name, Key: key})
	})
	if err != nil {
		return err
	}
	if !resp.GetUnlocked() {
		return fmt.Errorf("%w: %s", types.ErrUnlockFailed, name)
	}

	if clock, ok := c.held.LoadAndDelete(key); ok {
		metrics.LocksHeld.Dec()
		metrics.LockHeldDuration.Observe(clock.Elapsed().Seconds())
	}
	c.logger.Info("lock released", "lock", name)
	return nil
}

// RefreshLock extends the lock's timeout to lockTimeout from now.
func (c *Client) RefreshLock(ctx context.Context, name, key string, lockTimeout time.Duration) (*Lock, error) {
	if c.closed.Load() {
		return nil, types.ErrClientClosed
	}
	return c.renew(ctx, name, key, lockTimeout)
}

func (c *Client) renew(ctx context.Context, name, key string, lockTimeout time.Duration) (*Lock, error) {
	resp, err := invoke(ctx, c.caller, types.MethodRenew, func(ctx context.Context) (*pb.LockResponse, error) {
		return c.client.Renew(ctx, &pb.RenewRequest{
			Name:               name,
			Key:                key,
			LockTimeoutSeconds: types.Seconds(lockTimeout),
		})
	})
	if err != nil {
		return nil, err
	}

	if resp.GetName() != "" {
		name = resp.GetName()
	}
	return &Lock{
		client: c,
		name:   name,
		key:    resp.GetKey(),
		locked: resp.GetLocked(),
	}, nil
}

func (c *Client) renewLease(ctx context.Context, lease types.Lease) error {
	_, err := c.renew(ctx, lease.Name, lease.Key, lease.Timeout)
	return err
}

// WithLock acquires name with Lock, runs fn and unlocks afterwards. fn runs
// even when the lock was not acquired so it can check l.Locked(). Unlock only
// happens for an acquired lock, also when fn panics.
func (c *Client) WithLock(ctx context.Context, name string, fn func(ctx context.Context, l *Lock) error, opts ...LockOption) error {
	l, err := c.Lock(ctx, name, opts...)
	return c.scoped(ctx, l, err, fn)
}

// WithTryLock is WithLock using TryLock.
func (c *Client) WithTryLock(ctx context.Context, name string, fn func(ctx context.Context, l *Lock) error, opts ...LockOption) error {
	l, err := c.TryLock(ctx, name, opts...)
	return c.scoped(ctx, l, err, fn)
}

func (c *Client) scoped(ctx context.Context, l *Lock, err error, fn func(context.Context, *Lock) error) (retErr error) {
	if err != nil {
		// held but not refreshed, give it back without touching the
		// timer that already exists for this name
		if l != nil && l.Locked() {
			return errors.Join(err, c.unlock(context.WithoutCancel(ctx), l.Name(), l.Key()))
		}
		return err
	}

	if l.Locked() {
		defer func() {
			if uerr := c.Unlock(context.WithoutCancel(ctx), l.Name(), l.Key()); uerr != nil {
				retErr = errors.Join(retErr, fmt.Errorf("unlock %s: %w", l.Name(), uerr))
			}
		}()
	}

	return fn(ctx, l)
}

// Close stops every refresh timer and closes the connection. Locks still
// held are not unlocked, they expire on the server.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	c.refresh.stopAll()

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
