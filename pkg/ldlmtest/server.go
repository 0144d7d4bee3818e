// Package ldlmtest provides an in-memory LDLM server for tests. It runs the
// real gRPC service over an in-process listener and can be told to fail calls.
package ldlmtest

import (
	"context"
	"net"
	"sync"
	"time"

	pb "github.com/pixperk/ldlm/api/v1"
	"github.com/pixperk/ldlm/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

// how often a waiting Lock rechecks for expired holders
const expiryPoll = 10 * time.Millisecond

// Call is one rpc as received by the server, failed ones included.
type Call struct {
	Method             types.Method
	Name               string
	Key                string
	LockTimeoutSeconds int32
	Authorization      string
}

type Server struct {
	pb.UnimplementedLDLMServer

	store    *store
	grpc     *grpc.Server
	lis      *bufconn.Listener
	external net.Listener
	password string

	mu       sync.Mutex
	failures map[types.Method]int
	calls    []Call
}

type Option func(*Server)

// WithPassword rejects calls whose authorization header doesn't match.
func WithPassword(password string) Option {
	return func(s *Server) {
		s.password = password
	}
}

// WithListener serves on lis, e.g. a TCP listener, instead of in memory.
func WithListener(lis net.Listener) Option {
	return func(s *Server) {
		s.external = lis
	}
}

// NewServer starts serving right away. Stop it with Stop.
func NewServer(opts ...Option) *Server {
	s := &Server{
		store:    newStore(),
		lis:      bufconn.Listen(bufSize),
		failures: make(map[types.Method]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.grpc = grpc.NewServer(grpc.ChainUnaryInterceptor(s.record, s.authenticate, s.inject))
	pb.RegisterLDLMServer(s.grpc, s)

	var lis net.Listener = s.lis
	if s.external != nil {
		lis = s.external
	}
	go s.grpc.Serve(lis) //nolint:errcheck // returns when stopped

	return s
}

// Target is the address to pass to client.New together with DialOption.
func (s *Server) Target() string {
	if s.external != nil {
		return s.external.Addr().String()
	}
	return "passthrough:///bufnet"
}

func (s *Server) Dialer() func(context.Context, string) (net.Conn, error) {
	return func(ctx context.Context, _ string) (net.Conn, error) {
		return s.lis.DialContext(ctx)
	}
}

// DialOptions connect a client to this server.
func (s *Server) DialOptions() []grpc.DialOption {
	if s.external != nil {
		return []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return []grpc.DialOption{
		grpc.WithContextDialer(s.Dialer()),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
}

func (s *Server) Stop() {
	s.grpc.Stop()
	s.lis.Close()
}

// FailNext makes the next n calls of method fail with codes.Unavailable.
func (s *Server) FailNext(method types.Method, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] += n
}

// Calls returns every call received for method, oldest first.
func (s *Server) Calls(method types.Method) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Call
	for _, c := range s.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Holders returns how many keys currently hold name.
func (s *Server) Holders(name string) int {
	return s.store.holders(name)
}

var methods = map[string]types.Method{
	pb.LDLM_Lock_FullMethodName:    types.MethodLock,
	pb.LDLM_TryLock_FullMethodName: types.MethodTryLock,
	pb.LDLM_Unlock_FullMethodName:  types.MethodUnlock,
	pb.LDLM_Renew_FullMethodName:   types.MethodRenew,
}

type lockRequest interface {
	GetName() string
	GetLockTimeoutSeconds() int32
}

func (s *Server) record(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	call := Call{Method: methods[info.FullMethod]}
	if r, ok := req.(lockRequest); ok {
		call.Name = r.GetName()
		call.LockTimeoutSeconds = r.GetLockTimeoutSeconds()
	}
	if r, ok := req.(*pb.UnlockRequest); ok {
		call.Name = r.GetName()
		call.Key = r.GetKey()
	}
	if r, ok := req.(*pb.RenewRequest); ok {
		call.Key = r.GetKey()
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("authorization"); len(v) > 0 {
			call.Authorization = v[0]
		}
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	return handler(ctx, req)
}

func (s *Server) authenticate(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.password == "" {
		return handler(ctx, req)
	}

	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get("authorization"); len(v) == 0 || v[0] != s.password {
		return nil, status.Error(codes.Unauthenticated, "invalid or missing authorization")
	}
	return handler(ctx, req)
}

func (s *Server) inject(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := methods[info.FullMethod]

	s.mu.Lock()
	fail := s.failures[method] > 0
	if fail {
		s.failures[method]--
	}
	s.mu.Unlock()

	if fail {
		return nil, status.Error(codes.Unavailable, "injected failure")
	}
	return handler(ctx, req)
}

// name is the only field the server can't default
func validate(name string) error {
	if name == "" {
		return status.Error(codes.InvalidArgument, "name required")
	}
	return nil
}

func sizeOf(size *int32) int32 {
	if size == nil {
		return 1
	}
	return *size
}

func seconds(n int32) time.Duration {
	return time.Duration(n) * time.Second
}

func (s *Server) Lock(ctx context.Context, req *pb.LockRequest) (*pb.LockResponse, error) {
	if err := validate(req.GetName()); err != nil {
		return nil, err
	}

	var deadline <-chan time.Time
	if req.WaitTimeoutSeconds != nil {
		t := time.NewTimer(seconds(req.GetWaitTimeoutSeconds()))
		defer t.Stop()
		deadline = t.C
	}

	poll := time.NewTicker(expiryPoll)
	defer poll.Stop()

	for {
		key, locked, changed, err := s.store.tryAcquire(req.GetName(), sizeOf(req.Size), seconds(req.GetLockTimeoutSeconds()))
		if err != nil {
			return &pb.LockResponse{Name: req.GetName(), Error: types.ToRPCError(err)}, nil
		}
		if locked {
			return &pb.LockResponse{Locked: true, Name: req.GetName(), Key: key}, nil
		}

		select {
		case <-changed:
		case <-poll.C:
		case <-deadline:
			return &pb.LockResponse{Name: req.GetName(), Error: types.ToRPCError(types.ErrLockWaitTimeout)}, nil
		case <-ctx.Done():
			return nil, status.FromContextError(ctx.Err()).Err()
		}
	}
}

func (s *Server) TryLock(_ context.Context, req *pb.TryLockRequest) (*pb.LockResponse, error) {
	if err := validate(req.GetName()); err != nil {
		return nil, err
	}

	key, locked, _, err := s.store.tryAcquire(req.GetName(), sizeOf(req.Size), seconds(req.GetLockTimeoutSeconds()))
	if err != nil {
		return &pb.LockResponse{Name: req.GetName(), Error: types.ToRPCError(err)}, nil
	}
	return &pb.LockResponse{Locked: locked, Name: req.GetName(), Key: key}, nil
}

func (s *Server) Unlock(_ context.Context, req *pb.UnlockRequest) (*pb.UnlockResponse, error) {
	if err := validate(req.GetName()); err != nil {
		return nil, err
	}

	if err := s.store.release(req.GetName(), req.GetKey()); err != nil {
		return &pb.UnlockResponse{Name: req.GetName(), Error: types.ToRPCError(err)}, nil
	}
	return &pb.UnlockResponse{Unlocked: true, Name: req.GetName()}, nil
}

func (s *Server) Renew(_ context.Context, req *pb.RenewRequest) (*pb.LockResponse, error) {
	if err := validate(req.GetName()); err != nil {
		return nil, err
	}

	if err := s.store.renew(req.GetName(), req.GetKey(), seconds(req.GetLockTimeoutSeconds())); err != nil {
		return &pb.LockResponse{Name: req.GetName(), Error: types.ToRPCError(err)}, nil
	}
	return &pb.LockResponse{Locked: true, Name: req.GetName(), Key: req.GetKey()}, nil
}
