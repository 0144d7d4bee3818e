package client_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/pixperk/ldlm/pkg/client"
	"github.com/pixperk/ldlm/pkg/ldlmtest"
)

// Run with: go test -bench=. -benchtime=10s ./pkg/client/

func newBenchClient(tb testing.TB, srv *ldlmtest.Server) *client.Client {
	tb.Helper()

	c, err := client.New(srv.Target(),
		client.WithDialOptions(srv.DialOptions()...),
		client.WithRetries(0),
		client.WithLogger(discard()),
	)
	if err != nil {
		tb.Fatalf("Failed to connect: %v", err)
	}
	return c
}

func BenchmarkSequential(b *testing.B) {
	srv := ldlmtest.NewServer()
	defer srv.Stop()

	c := newBenchClient(b, srv)
	defer c.Close()

	ctx := context.Background()
	lockName := "bench-lock-sequential"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lock, err := c.Lock(ctx, lockName)
		if err != nil {
			b.Fatalf("Failed to lock: %v", err)
		}
		lock.Unlock(ctx)
	}
}

func BenchmarkParallel(b *testing.B) {
	srv := ldlmtest.NewServer()
	defer srv.Stop()

	b.RunParallel(func(pb *testing.PB) {
		c := newBenchClient(b, srv)
		defer c.Close()

		ctx := context.Background()
		lockName := fmt.Sprintf("lock-%d", time.Now().UnixNano())

		for pb.Next() {
			lock, err := c.TryLock(ctx, lockName)
			if err != nil || !lock.Locked() {
				continue
			}
			lock.Unlock(ctx)
		}
	})
}

func BenchmarkContention(b *testing.B) {
	const numClients = 3
	lockName := "bench-lock-contention"

	srv := ldlmtest.NewServer()
	defer srv.Stop()

	clients := make([]*client.Client, numClients)
	ctx := context.Background()

	for i := 0; i < numClients; i++ {
		c := newBenchClient(b, srv)
		defer c.Close()
		clients[i] = c
	}

	b.ResetTimer()

	var wg sync.WaitGroup
	opsPerClient := b.N / numClients

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func(c *client.Client) {
			defer wg.Done()
			for j := 0; j < opsPerClient; j++ {
				lock, err := c.Lock(ctx, lockName)
				if err != nil {
					continue
				}
				time.Sleep(1 * time.Millisecond)
				lock.Unlock(ctx)
			}
		}(clients[i])
	}

	wg.Wait()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
