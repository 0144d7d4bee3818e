package types

import (
	"errors"
	"fmt"

	pb "github.com/pixperk/ldlm/api/v1"
)

var (
	// server errors, one per pb.ErrorCode
	ErrUnknown                      = errors.New("unknown server error")
	ErrLockDoesNotExist             = errors.New("lock does not exist")
	ErrInvalidLockKey               = errors.New("invalid lock key")
	ErrLockWaitTimeout              = errors.New("timed out waiting for lock")
	ErrNotLocked                    = errors.New("lock is not locked")
	ErrLockDoesNotExistOrInvalidKey = errors.New("lock does not exist or invalid key")
	ErrLockSizeMismatch             = errors.New("lock size mismatch")
	ErrInvalidLockSize              = errors.New("invalid lock size")

	// client errors
	ErrRefreshTimerExists = errors.New("refresh timer already exists for lock")
	ErrUnlockFailed       = errors.New("server reported lock was not unlocked")
	ErrClientClosed       = errors.New("client is closed")
)

var codeErrors = map[pb.ErrorCode]error{
	pb.ErrorCode_Unknown:                      ErrUnknown,
	pb.ErrorCode_LockDoesNotExist:             ErrLockDoesNotExist,
	pb.ErrorCode_InvalidLockKey:               ErrInvalidLockKey,
	pb.ErrorCode_LockWaitTimeout:              ErrLockWaitTimeout,
	pb.ErrorCode_NotLocked:                    ErrNotLocked,
	pb.ErrorCode_LockDoesNotExistOrInvalidKey: ErrLockDoesNotExistOrInvalidKey,
	pb.ErrorCode_LockSizeMismatch:             ErrLockSizeMismatch,
	pb.ErrorCode_InvalidLockSize:              ErrInvalidLockSize,
}

// ServerError is an application error embedded in an otherwise successful
// response. errors.Is matches it against the sentinel for its code.
type ServerError struct {
	Code    pb.ErrorCode
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ldlm: %s", e.Code)
	}
	return fmt.Sprintf("ldlm: %s: %s", e.Code, e.Message)
}

func (e *ServerError) Unwrap() error {
	if err, ok := codeErrors[e.Code]; ok {
		return err
	}
	return ErrUnknown
}

// FromRPCError converts the error field of a response, nil if unset
func FromRPCError(e *pb.Error) error {
	if e == nil {
		return nil
	}
	return &ServerError{Code: e.GetCode(), Message: e.GetMessage()}
}

// ToRPCError is the inverse of FromRPCError, used by servers
func ToRPCError(err error) *pb.Error {
	if err == nil {
		return nil
	}

	var se *ServerError
	if errors.As(err, &se) {
		return &pb.Error{Code: se.Code, Message: se.Message}
	}

	for code, sentinel := range codeErrors {
		if errors.Is(err, sentinel) {
			return &pb.Error{Code: code, Message: err.Error()}
		}
	}
	return &pb.Error{Code: pb.ErrorCode_Unknown, Message: err.Error()}
}
