package client

import (
	"log/slog"
	"time"

	"github.com/pixperk/ldlm/pkg/types"
	"google.golang.org/grpc"
)

const (
	DefaultRetries            = -1
	DefaultRetryDelay         = 5 * time.Second
	DefaultMinRefreshInterval = 10 * time.Second
)

// RetryPolicy controls how transport failures are retried.
// MaxRetries is the number of retries after the first attempt, -1 retries forever.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

// TLSConfig points at PEM files. CertFile and KeyFile enable mutual TLS.
type TLSConfig struct {
	CAFile             string
	CertFile           string
	KeyFile            string
	InsecureSkipVerify bool
}

type options struct {
	retry              RetryPolicy
	tls                *TLSConfig
	password           string
	autoRefresh        bool
	minRefreshInterval time.Duration
	defaultLockTimeout time.Duration
	logger             *slog.Logger
	onRefreshError     func(name string, err error)
	dialOptions        []grpc.DialOption
}

func defaultOptions() options {
	return options{
		retry: RetryPolicy{
			MaxRetries: DefaultRetries,
			Delay:      DefaultRetryDelay,
		},
		autoRefresh:        true,
		minRefreshInterval: DefaultMinRefreshInterval,
	}
}

type Option func(*options)

// WithRetries sets how many times a transport failure is retried, -1 for no limit.
func WithRetries(n int) Option {
	return func(o *options) {
		if n < -1 {
			n = -1
		}
		o.retry.MaxRetries = n
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.retry.Delay = d
		}
	}
}

func WithTLS(cfg TLSConfig) Option {
	return func(o *options) {
		o.tls = &cfg
	}
}

// WithPassword sends the secret as the authorization header on every call.
func WithPassword(secret string) Option {
	return func(o *options) {
		o.password = secret
	}
}

// WithAutoRefresh toggles background refreshing of locks acquired with a lock timeout.
func WithAutoRefresh(enabled bool) Option {
	return func(o *options) {
		o.autoRefresh = enabled
	}
}

func WithMinRefreshInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.minRefreshInterval = d
		}
	}
}

// WithDefaultLockTimeout applies d to Lock and TryLock calls that don't set a lock timeout.
func WithDefaultLockTimeout(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.defaultLockTimeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRefreshErrorHandler is called from the refresh goroutine when a lock
// could not be refreshed. The lock is no longer kept alive after that.
func WithRefreshErrorHandler(fn func(name string, err error)) Option {
	return func(o *options) {
		o.onRefreshError = fn
	}
}

// WithDialOptions appends raw grpc dial options, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}

type LockOption func(*types.LockParams)

// WithWaitTimeout bounds how long Lock waits on the server. Ignored by TryLock.
func WithWaitTimeout(d time.Duration) LockOption {
	return func(p *types.LockParams) {
		p.WaitTimeout = d
	}
}

// WithLockTimeout makes the server release the lock after d unless it is refreshed.
func WithLockTimeout(d time.Duration) LockOption {
	return func(p *types.LockParams) {
		p.LockTimeout = d
	}
}

// WithSize requests a lock with n concurrent holders.
func WithSize(n int32) LockOption {
	return func(p *types.LockParams) {
		p.Size = n
	}
}
