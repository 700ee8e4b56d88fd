package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/tailisp/configs"
	"github.com/reusee/tailisp/diags"
	"github.com/reusee/tailisp/lispconfigs"
	"github.com/reusee/tailisp/lisplang"
	"github.com/reusee/tailisp/logs"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	path := os.Args[1]

	scope := dscope.New(
		new(lispconfigs.Module),
	)

	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		newSpan logs.NewSpan,
		opts diags.Options,
	) {
		if err := loader.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: config: %v\n", err)
			os.Exit(1)
		}
		ctx, _ := newSpan(logs.WithInput(context.Background(), path), "")
		os.Exit(run(ctx, logger, opts, path, os.Stdout, os.Stderr))
	})
}

// run dumps the tokens of the file at path and returns the exit code.
func run(
	ctx context.Context,
	logger logs.Logger,
	opts diags.Options,
	path string,
	stdout io.Writer,
	stderr io.Writer,
) int {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.ErrorContext(ctx, "read file", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	src := lisplang.NewSource(path, string(content))
	tokens, err := src.Tokenize()
	if err != nil {
		logger.DebugContext(ctx, "tokenize", "error", err)
		if err := diags.Render(stderr, src, err, opts); err != nil {
			logger.ErrorContext(ctx, "render diagnostic", "error", err)
		}
		return 1
	}
	logger.DebugContext(ctx, "tokenize", "tokens", len(tokens))

	if err := lisplang.DumpTokens(stdout, path, tokens); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
