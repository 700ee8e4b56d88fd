package lispstar

import (
	"errors"
	"fmt"

	"github.com/reusee/tailisp/lispdata"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var ErrUnsupported = errors.New("unsupported value")

// Symbol is the starlark form of lispdata.Symbol, kept distinct from strings.
type Symbol string

var _ starlark.Comparable = Symbol("")

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) Type() string {
	return "symbol"
}

func (s Symbol) Freeze() {}

func (s Symbol) Truth() starlark.Bool {
	return s != ""
}

func (s Symbol) Hash() (uint32, error) {
	return starlark.String(s).Hash()
}

func (s Symbol) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	other := y.(Symbol)
	switch op {
	case syntax.EQL:
		return s == other, nil
	case syntax.NEQ:
		return s != other, nil
	}
	return false, fmt.Errorf("%s not supported for symbols", op)
}

// ToStarlark converts proper lists to lists and other cons cells to (car, cdr) tuples.
func ToStarlark(v lispdata.Value) (starlark.Value, error) {
	switch v := v.(type) {

	case lispdata.Nil, nil:
		return starlark.NewList(nil), nil

	case lispdata.Symbol:
		return Symbol(v), nil

	case lispdata.String:
		return starlark.String(v), nil

	case lispdata.Number:
		return starlark.Float(v), nil

	case lispdata.Cons:
		if lispdata.IsList(v) {
			items, err := lispdata.ListToSlice(v)
			if err != nil {
				return nil, err
			}
			elems := make([]starlark.Value, len(items))
			for i, item := range items {
				elems[i], err = ToStarlark(item)
				if err != nil {
					return nil, err
				}
			}
			return starlark.NewList(elems), nil
		}
		car, err := ToStarlark(v.Car)
		if err != nil {
			return nil, err
		}
		cdr, err := ToStarlark(v.Cdr)
		if err != nil {
			return nil, err
		}
		return starlark.Tuple{car, cdr}, nil

	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func FromStarlark(v starlark.Value) (lispdata.Value, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return lispdata.Nil{}, nil

	case Symbol:
		return lispdata.Sym(string(v)), nil

	case starlark.String:
		return lispdata.String(v), nil

	case starlark.Float:
		return lispdata.Number(v), nil

	case starlark.Int:
		return lispdata.Number(v.Float()), nil

	case *starlark.List:
		items := make([]lispdata.Value, v.Len())
		for i := range v.Len() {
			item, err := FromStarlark(v.Index(i))
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return lispdata.SliceToList(items), nil

	case starlark.Tuple:
		if len(v) != 2 {
			return nil, fmt.Errorf("%w: tuple of %d elements", ErrUnsupported, len(v))
		}
		car, err := FromStarlark(v[0])
		if err != nil {
			return nil, err
		}
		cdr, err := FromStarlark(v[1])
		if err != nil {
			return nil, err
		}
		return lispdata.NewCons(car, cdr), nil

	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, v.Type())
}
