package client

import (
	"io"
	"log/slog"
	"testing"
	"time"

	mock_v1 "github.com/pixperk/ldlm/api/v1/mock"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// client over a mock stub, no connection
func newMockClient(t *testing.T, opts ...Option) (*Client, *mock_v1.MockLDLMClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	stub := mock_v1.NewMockLDLMClient(ctrl)

	o := defaultOptions()
	o.retry.Delay = time.Millisecond
	o.logger = discardLogger()
	for _, opt := range opts {
		opt(&o)
	}

	c := newClient(nil, stub, o)
	t.Cleanup(func() { c.Close() })
	return c, stub
}
