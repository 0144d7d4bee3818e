package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v5"
	pb "github.com/pixperk/ldlm/api/v1"
	"github.com/pixperk/ldlm/pkg/metrics"
	"github.com/pixperk/ldlm/pkg/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var tracer = otel.Tracer("github.com/pixperk/ldlm/pkg/client")

// every ldlm reply carries an optional embedded error
type response interface {
	GetError() *pb.Error
}

// only an unavailable channel is retried, everything else is final
func retryable(err error) bool {
	return status.Code(err) == codes.Unavailable
}

type caller struct {
	policy RetryPolicy
	logger *slog.Logger
}

func (c *caller) options(ctx context.Context, method types.Method) []retry.Option {
	opts := []retry.Option{
		retry.Context(ctx),
		retry.RetryIf(retryable),
		retry.Delay(c.policy.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			// called for the final failed attempt too, which is not retried
			if c.policy.MaxRetries >= 0 && int(n) >= c.policy.MaxRetries {
				return
			}
			metrics.RPCRetriesTotal.WithLabelValues(method.String()).Inc()
			c.logger.Warn("rpc failed, retrying",
				"method", method.String(),
				"attempt", n+1,
				"delay", c.policy.Delay,
				"error", err)
		}),
	}

	if c.policy.MaxRetries < 0 {
		opts = append(opts, retry.UntilSucceeded())
	} else {
		opts = append(opts, retry.Attempts(uint(c.policy.MaxRetries)+1))
	}
	return opts
}

// invoke runs fn until it succeeds, fails with a non-retryable error or runs
// out of retries. A reply carrying an embedded error is returned as that error.
func invoke[R response](ctx context.Context, c *caller, method types.Method, fn func(context.Context) (R, error)) (R, error) {
	name := method.String()
	ctx, span := tracer.Start(ctx, "ldlm."+name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	attempts := 0
	resp, err := retry.NewWithData[R](c.options(ctx, method)...).Do(func() (R, error) {
		attempts++
		return fn(ctx)
	})

	metrics.RPCDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("ldlm.rpc.attempts", attempts))

	if err != nil {
		metrics.RPCTotal.WithLabelValues(name, metrics.StatusTransport).Inc()
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		var zero R
		return zero, fmt.Errorf("%s: %w", strings.ToLower(name), err)
	}

	if err := types.FromRPCError(resp.GetError()); err != nil {
		metrics.RPCTotal.WithLabelValues(name, metrics.StatusServerError).Inc()
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		c.logger.Debug("rpc returned error", "method", name, "error", err)
		var zero R
		return zero, err
	}

	metrics.RPCTotal.WithLabelValues(name, metrics.StatusSuccess).Inc()
	return resp, nil
}
