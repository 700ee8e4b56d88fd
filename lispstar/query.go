package lispstar

import (
	"strings"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/tailisp/lispdata"
	"github.com/reusee/tailisp/lispread"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Query evaluates a starlark expression with the read forms bound to `forms`.
func Query(forms []lispdata.Value, expr string) (starlark.Value, error) {
	list, err := ToStarlark(lispdata.SliceToList(forms))
	if err != nil {
		return nil, err
	}
	thread := &starlark.Thread{
		Name: "query",
	}
	return starlark.EvalOptions(&syntax.FileOptions{}, thread, "query", expr, Globals(list))
}

func Globals(forms starlark.Value) starlark.StringDict {
	return starlark.StringDict{
		"forms":     forms,
		"display":   starlark.NewBuiltin("display", display),
		"is_list":   starlark.NewBuiltin("is_list", predicate(lispdata.IsList)),
		"is_pair":   starlark.NewBuiltin("is_pair", predicate(lispdata.IsPair)),
		"symbol":    starlark.NewBuiltin("symbol", symbol),
		"read":      starlark.NewBuiltin("read", read),
		"canonical": starlarkutil.MakeFunc("canonical", canonical),
	}
}

func display(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var arg starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &arg); err != nil {
		return nil, err
	}
	value, err := FromStarlark(arg)
	if err != nil {
		return nil, err
	}
	return starlark.String(lispdata.Display(value)), nil
}

func predicate(pred func(lispdata.Value) bool) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var arg starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &arg); err != nil {
			return nil, err
		}
		value, err := FromStarlark(arg)
		if err != nil {
			return nil, err
		}
		return starlark.Bool(pred(value)), nil
	}
}

func symbol(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}
	return Symbol(name), nil
}

// read returns the forms in src, converted like the bound forms.
func read(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var src string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &src); err != nil {
		return nil, err
	}
	values, err := lispread.ReadString(src)
	if err != nil {
		return nil, err
	}
	return ToStarlark(lispdata.SliceToList(values))
}

// canonical re-renders source text in display form, one value per line.
func canonical(src string) (string, error) {
	values, err := lispread.ReadString(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, value := range values {
		if i > 0 {
			b.WriteString("\n")
		}
		lispdata.Write(&b, value)
	}
	return b.String(), nil
}
