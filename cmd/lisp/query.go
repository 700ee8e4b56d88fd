package main

import (
	"fmt"

	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/lispstar"
	"go.starlark.net/starlark"
)

func init() {
	cmds.Define("query", cmds.Func(func(path string, expr string) {
		setAction(func(a *app) error {
			return a.query(path, expr)
		})
	}).Args("file", "expr").Desc("evaluate a starlark expression over the forms of file"))
}

func (a *app) query(path string, expr string) error {
	ctx := a.fileContext(path)
	src, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	values, err := a.read(ctx, src)
	if err != nil {
		return err
	}
	result, err := lispstar.Query(values, expr)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	// strings print bare
	if s, ok := result.(starlark.String); ok {
		_, err = fmt.Fprintln(a.stdout, string(s))
		return err
	}
	_, err = fmt.Fprintln(a.stdout, result.String())
	return err
}
