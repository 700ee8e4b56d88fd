package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/configs"
	"github.com/reusee/tailisp/diags"
	"github.com/reusee/tailisp/lispconfigs"
	"github.com/reusee/tailisp/logs"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	// returned when the failure was already printed
	errReported = errors.New("reported")
)

type app struct {
	logger     logs.Logger
	newSpan    logs.NewSpan
	opts       diags.Options
	format     lispconfigs.Format
	extensions lispconfigs.Extensions
	stdout     io.Writer
	stderr     io.Writer
}

var action func(a *app) error

func setAction(fn func(a *app) error) {
	if action != nil {
		panic(fmt.Errorf("only one command can be run"))
	}
	action = fn
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(lispconfigs.Module),
	)

	// settings providers panic on invalid config
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: config: %v\n", err)
			os.Exit(1)
		}
	})

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		opts diags.Options,
		format lispconfigs.Format,
		extensions lispconfigs.Extensions,
	) {
		a := &app{
			logger:     logger,
			newSpan:    newSpan,
			opts:       opts,
			format:     format,
			extensions: extensions,
			stdout:     os.Stdout,
			stderr:     os.Stderr,
		}
		if err := action(a); err != nil {
			if !errors.Is(err, errReported) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(1)
		}
	})
}
