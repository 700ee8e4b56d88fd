package main

import (
	"context"
	"os"

	"github.com/reusee/tailisp/diags"
	"github.com/reusee/tailisp/lispdata"
	"github.com/reusee/tailisp/lisplang"
	"github.com/reusee/tailisp/lispread"
	"github.com/reusee/tailisp/logs"
)

func (a *app) fileContext(path string) context.Context {
	ctx, _ := a.newSpan(logs.WithInput(context.Background(), path), "")
	return ctx
}

func (a *app) load(ctx context.Context, path string) (*lisplang.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		a.logger.ErrorContext(ctx, "read file", "error", err)
		return nil, wrap(logs.WrapSpan(ctx, err))
	}
	return lisplang.NewSource(path, string(content)), nil
}

// report renders a lexing or reading failure against src.
func (a *app) report(ctx context.Context, src *lisplang.Source, err error) error {
	a.logger.DebugContext(ctx, "failed", "error", err)
	if err := diags.Render(a.stderr, src, err, a.opts); err != nil {
		return err
	}
	return errReported
}

func (a *app) tokenize(ctx context.Context, src *lisplang.Source) ([]lisplang.Token, error) {
	tokens, err := src.Tokenize()
	if err != nil {
		return nil, a.report(ctx, src, err)
	}
	a.logger.DebugContext(ctx, "tokenize", "tokens", len(tokens))
	return tokens, nil
}

func (a *app) read(ctx context.Context, src *lisplang.Source) ([]lispdata.Value, error) {
	tokens, err := a.tokenize(ctx, src)
	if err != nil {
		return nil, err
	}
	values, err := lispread.Read(tokens)
	if err != nil {
		return nil, a.report(ctx, src, err)
	}
	a.logger.DebugContext(ctx, "read", "values", len(values))
	return values, nil
}
