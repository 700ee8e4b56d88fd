package main

import (
	"fmt"

	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/lispconfigs"
	"github.com/reusee/tailisp/lisplang"
)

func init() {
	cmds.Define("tokens", cmds.Func(func(path string) {
		setAction(func(a *app) error {
			return a.tokens(path)
		})
	}).Args("file").Desc("print the tokens of file"))
}

func (a *app) tokens(path string) error {
	ctx := a.fileContext(path)
	src, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	tokens, err := a.tokenize(ctx, src)
	if err != nil {
		return err
	}
	switch a.format {
	case lispconfigs.FormatText:
		return lisplang.DumpTokens(a.stdout, path, tokens)
	case lispconfigs.FormatJSON:
		return lisplang.DumpTokensJSON(a.stdout, path, tokens)
	}
	return fmt.Errorf("unknown format: %s", a.format)
}
