package ports

import "context"

// SpanConfig holds optional span settings.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption configures a span at creation.
type SpanOption func(*SpanConfig)

// WithAttribute attaches an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// Tracer starts spans around the phases of a run.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start creates a span named name as a child of any span in ctx.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span is a unit of traced work.
type Span interface {
	// End completes the span.
	End()
	// RecordError marks the span as failed.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
