package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
	})
}

func TestInputAttribute(t *testing.T) {
	SetLevel(slog.LevelInfo)
	defer SetLevel(slog.LevelWarn)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithInput(context.Background(), "foo.lisp")
		logger.With("tokens", 3).InfoContext(ctx, "tokenized")
		line := buf.String()
		if !strings.Contains(line, "input=foo.lisp") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "tokens=3") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %s", got)
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	if WrapSpan(context.Background(), base) != base {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	ctx = WithInput(ctx, "x.lisp")
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "span: abc") || !strings.Contains(err.Error(), "input: x.lisp") {
		t.Fatalf("got %v", err)
	}
}
