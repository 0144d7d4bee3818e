package types

import (
	"errors"
	"fmt"
	"testing"
	"time"

	pb "github.com/pixperk/ldlm/api/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshInterval(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		floor   time.Duration
		want    time.Duration
	}{
		{"margin subtracted", 40 * time.Second, time.Second, 10 * time.Second},
		{"floor wins", 10 * time.Second, 10 * time.Second, 10 * time.Second},
		{"floor wins over small remainder", 35 * time.Second, 10 * time.Second, 10 * time.Second},
		{"long timeout", 5 * time.Minute, 10 * time.Second, 270 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Lease{Name: "a", Key: "k", Timeout: tt.timeout}
			assert.Equal(t, tt.want, l.RefreshInterval(tt.floor))
		})
	}
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, int32(0), Seconds(0))
	assert.Equal(t, int32(0), Seconds(-time.Second))
	assert.Equal(t, int32(1), Seconds(time.Millisecond))
	assert.Equal(t, int32(40), Seconds(40*time.Second))
	assert.Equal(t, int32(2), Seconds(1500*time.Millisecond))
}

func TestServerErrorUnwrap(t *testing.T) {
	for code, sentinel := range codeErrors {
		err := FromRPCError(&pb.Error{Code: code, Message: "msg"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sentinel), code.String())

		// still matches after wrapping
		wrapped := fmt.Errorf("lock: %w", err)
		assert.ErrorIs(t, wrapped, sentinel)
	}

	assert.NoError(t, FromRPCError(nil))
}

func TestServerErrorMessage(t *testing.T) {
	err := &ServerError{Code: pb.ErrorCode_InvalidLockKey, Message: "key mismatch"}
	assert.Equal(t, "ldlm: InvalidLockKey: key mismatch", err.Error())

	err = &ServerError{Code: pb.ErrorCode_NotLocked}
	assert.Equal(t, "ldlm: NotLocked", err.Error())
}

func TestToRPCError(t *testing.T) {
	assert.Nil(t, ToRPCError(nil))

	e := ToRPCError(ErrLockSizeMismatch)
	assert.Equal(t, pb.ErrorCode_LockSizeMismatch, e.GetCode())

	e = ToRPCError(fmt.Errorf("wrapped: %w", ErrNotLocked))
	assert.Equal(t, pb.ErrorCode_NotLocked, e.GetCode())

	e = ToRPCError(&ServerError{Code: pb.ErrorCode_InvalidLockSize, Message: "size 0"})
	assert.Equal(t, pb.ErrorCode_InvalidLockSize, e.GetCode())
	assert.Equal(t, "size 0", e.GetMessage())

	e = ToRPCError(errors.New("disk on fire"))
	assert.Equal(t, pb.ErrorCode_Unknown, e.GetCode())
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "Lock", MethodLock.String())
	assert.Equal(t, "TryLock", MethodTryLock.String())
	assert.Equal(t, "Unlock", MethodUnlock.String())
	assert.Equal(t, "Renew", MethodRenew.String())
	assert.Equal(t, "Unknown", Method(0).String())
}
