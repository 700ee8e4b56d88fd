package lispconfigs

import (
	"slices"

	"github.com/reusee/tailisp/cmds"
	"github.com/reusee/tailisp/configs"
	"github.com/reusee/tailisp/diags"
	"github.com/reusee/tailisp/logs"
	"github.com/reusee/tailisp/vars"
)

type ContextLines int

var contextFlag = cmds.Var[*int]("-context")

const defaultContextLines = 3

func (Module) ContextLines(
	loader configs.Loader,
	logger logs.Logger,
) ContextLines {
	if *contextFlag != nil {
		return ContextLines(max(**contextFlag, 0))
	}
	n, ok, err := configs.Lookup[int](loader, "context_lines")
	if err != nil {
		logger.Warn("config", "key", "context_lines", "error", err)
	}
	if ok {
		return ContextLines(n)
	}
	return defaultContextLines
}

type Color bool

var (
	colorFlag   = cmds.Switch("-color")
	noColorFlag = cmds.Switch("-no-color")
)

func (Module) Color(
	loader configs.Loader,
) Color {
	if *noColorFlag {
		return false
	}
	return Color(*colorFlag || configs.First[bool](loader, "color"))
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var formatFlag = cmds.Var[string]("-format")

func (Module) Format(
	loader configs.Loader,
) Format {
	return Format(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "format"),
		string(FormatText),
	))
}

// Extensions selects the files `check` picks up when walking a directory.
type Extensions []string

var defaultExtensions = Extensions{".lisp", ".scm"}

// Extensions unions the lists set in every config file.
func (Module) Extensions(
	loader configs.Loader,
) Extensions {
	var ret Extensions
	for exts := range configs.All[[]string](loader, "extensions") {
		for _, ext := range exts {
			if !slices.Contains(ret, ext) {
				ret = append(ret, ext)
			}
		}
	}
	if len(ret) == 0 {
		return defaultExtensions
	}
	return ret
}

func (Module) DiagOptions(
	contextLines ContextLines,
	color Color,
) diags.Options {
	return diags.Options{
		ContextLines: int(contextLines),
		Color:        bool(color),
	}
}
