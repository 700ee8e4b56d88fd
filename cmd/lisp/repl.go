package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/lispdata"
	"github.com/reusee/tailisp/lisplang"
	"github.com/reusee/tailisp/lispread"
)

var showTokens = cmds.Switch("-tokens")

func init() {
	cmds.Define("repl", cmds.Func(func() {
		setAction(func(a *app) error {
			return a.repl()
		})
	}).Desc("read lines interactively and print their canonical form"))
}

func (a *app) repl() error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".tailisp_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ctx := context.Background()
	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		a.evalLine(ctx, fmt.Sprintf("<repl:%d>", n), line)
	}
	return nil
}

// evalLine prints the tokens or values read from line, or the diagnostic.
func (a *app) evalLine(ctx context.Context, name string, line string) {
	src := lisplang.NewSource(name, line)
	tokens, err := src.Tokenize()
	if err != nil {
		a.report(ctx, src, err)
		return
	}
	if *showTokens {
		for _, token := range tokens {
			fmt.Fprintf(a.stdout, "%s %s\n", token.Location, token)
		}
		return
	}
	values, err := lispread.Read(tokens)
	if err != nil {
		a.report(ctx, src, err)
		return
	}
	for _, value := range values {
		fmt.Fprintln(a.stdout, lispdata.Display(value))
	}
}
