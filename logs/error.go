package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span and input name in ctx to err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if v := ctx.Value(SpanKey); v != nil {
		err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	}
	if input := InputOf(ctx); input != "" {
		err = errors.Join(err, fmt.Errorf("input: %s", input))
	}
	return err
}
