package logs

import "context"

type Span string

type spanKey struct{}

var SpanKey = spanKey{}

type inputKey struct{}

var InputKey = inputKey{}

// WithInput records the name of the source being processed.
func WithInput(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, InputKey, name)
}

func InputOf(ctx context.Context) string {
	name, _ := ctx.Value(InputKey).(string)
	return name
}
