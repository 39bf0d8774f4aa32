package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotelinv/infras/otel"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func traced(t *testing.T, fn func(ctx context.Context) error) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	run := func() (err error) {
		ctx, span := provider.Tracer("test").Start(context.Background(), "op")
		scope := otel.NewScope(span)
		defer scope.End()
		defer scope.TraceIfError(&err)

		scope.SetAttributes(map[string]any{"sheet": "bookings", "rows": 3, "total": int64(7)})

		return fn(ctx)
	}

	_ = run()

	spans := recorder.Ended()
	assert.Len(t, spans, 1)

	return spans[0]
}

func TestScopeTraceIfError(t *testing.T) {
	t.Run("records the returned error", func(t *testing.T) {
		span := traced(t, func(context.Context) error {
			return errors.New("sheet missing")
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "sheet missing", span.Status().Description)
	})

	t.Run("leaves the span unset on success", func(t *testing.T) {
		span := traced(t, func(context.Context) error { return nil })

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Contains(t, span.Attributes(), attribute.String("sheet", "bookings"))
		assert.Contains(t, span.Attributes(), attribute.Int("rows", 3))
		assert.Contains(t, span.Attributes(), attribute.Int64("total", 7))
	})
}
