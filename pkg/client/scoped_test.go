package client

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/pixperk/ldlm/api/v1"
	"github.com/pixperk/ldlm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
)

func TestWithLockNotAcquiredNeverUnlocks(t *testing.T) {
	c, stub := newMockClient(t)

	// no Unlock expectation, any call fails the test
	stub.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(&pb.LockResponse{
		Name:  "a",
		Error: &pb.Error{Code: pb.ErrorCode_LockWaitTimeout},
	}, nil)

	ran := false
	err := c.WithLock(context.Background(), "a", func(_ context.Context, l *Lock) error {
		ran = true
		assert.False(t, l.Locked())
		return nil
	}, WithWaitTimeout(time.Second))

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWithTryLockNotAcquiredNeverUnlocks(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(&pb.LockResponse{Name: "a"}, nil)

	err := c.WithTryLock(context.Background(), "a", func(_ context.Context, l *Lock) error {
		assert.False(t, l.Locked())
		return nil
	})
	require.NoError(t, err)
}

func TestWithLockUnlocksAfterFn(t *testing.T) {
	c, stub := newMockClient(t)

	gomock.InOrder(
		stub.EXPECT().Lock(gomock.Any(), gomock.Any()).
			Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil),
		stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).
			Return(&pb.UnlockResponse{Unlocked: true, Name: "a"}, nil),
	)

	err := c.WithLock(context.Background(), "a", func(_ context.Context, l *Lock) error {
		assert.True(t, l.Locked())
		assert.False(t, c.refresh.has("a"))
		return nil
	})
	require.NoError(t, err)
}

func TestWithLockStopsRefreshBeforeUnlock(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().TryLock(gomock.Any(), gomock.Any()).
		Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil)
	stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *pb.UnlockRequest, ...grpc.CallOption) (*pb.UnlockResponse, error) {
			assert.False(t, c.refresh.has("a"))
			return &pb.UnlockResponse{Unlocked: true, Name: "a"}, nil
		})

	err := c.WithTryLock(context.Background(), "a", func(_ context.Context, l *Lock) error {
		assert.True(t, c.refresh.has("a"))
		return nil
	}, WithLockTimeout(time.Minute))
	require.NoError(t, err)
}

func TestWithLockReturnsFnError(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().Lock(gomock.Any(), gomock.Any()).
		Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil)
	stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).
		Return(&pb.UnlockResponse{Unlocked: true, Name: "a"}, nil)

	boom := errors.New("boom")
	err := c.WithLock(context.Background(), "a", func(context.Context, *Lock) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWithLockJoinsUnlockError(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().Lock(gomock.Any(), gomock.Any()).
		Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil)
	stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(&pb.UnlockResponse{
		Name:  "a",
		Error: &pb.Error{Code: pb.ErrorCode_InvalidLockKey},
	}, nil)

	boom := errors.New("boom")
	err := c.WithLock(context.Background(), "a", func(context.Context, *Lock) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, types.ErrInvalidLockKey)
}

func TestWithLockUnlocksOnPanic(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().Lock(gomock.Any(), gomock.Any()).
		Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil)
	stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).
		Return(&pb.UnlockResponse{Unlocked: true, Name: "a"}, nil)

	assert.PanicsWithValue(t, "boom", func() {
		_ = c.WithLock(context.Background(), "a", func(context.Context, *Lock) error {
			panic("boom")
		})
	})
}

func TestWithLockUnlocksWithCancelledContext(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().Lock(gomock.Any(), gomock.Any()).
		Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil)
	stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).
		Return(&pb.UnlockResponse{Unlocked: true, Name: "a"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	err := c.WithLock(ctx, "a", func(context.Context, *Lock) error {
		cancel()
		return nil
	})
	require.NoError(t, err)
}

func TestWithLockAcquireError(t *testing.T) {
	c, stub := newMockClient(t, WithRetries(0))

	stub.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil, errUnavailable)

	err := c.WithLock(context.Background(), "a", func(context.Context, *Lock) error {
		t.Fatal("fn must not run when acquisition fails")
		return nil
	})
	require.Error(t, err)
}

func TestLockHandle(t *testing.T) {
	c, stub := newMockClient(t)

	stub.EXPECT().TryLock(gomock.Any(), gomock.Any()).
		Return(&pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil)
	stub.EXPECT().Renew(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *pb.RenewRequest, _ ...grpc.CallOption) (*pb.LockResponse, error) {
			assert.Equal(t, int32(30), req.GetLockTimeoutSeconds())
			return &pb.LockResponse{Locked: true, Name: "a", Key: "k"}, nil
		})
	stub.EXPECT().Unlock(gomock.Any(), gomock.Any()).
		Return(&pb.UnlockResponse{Unlocked: true, Name: "a"}, nil)

	ctx := context.Background()
	l, err := c.TryLock(ctx, "a")
	require.NoError(t, err)

	r, err := l.Refresh(ctx, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, r.Locked())

	require.NoError(t, l.Unlock(ctx))

	unlocked := &Lock{client: c, name: "b"}
	assert.ErrorIs(t, unlocked.Unlock(ctx), types.ErrNotLocked)
	_, err = unlocked.Refresh(ctx, time.Second)
	assert.ErrorIs(t, err, types.ErrNotLocked)
}
