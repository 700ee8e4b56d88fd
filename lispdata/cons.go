package lispdata

import "errors"

var ErrNotList = errors.New("not a proper list")

// NewCons never special-cases Nil; classification is done by IsList and IsPair.
func NewCons(car, cdr Value) Value {
	return Cons{
		Car: orNil(car),
		Cdr: orNil(cdr),
	}
}

func NewFunction(params, body Value) Value {
	return Function{
		Car: orNil(params),
		Cdr: orNil(body),
	}
}

func orNil(v Value) Value {
	if v == nil {
		return Nil{}
	}
	return v
}

func IsNil(v Value) bool {
	switch v.(type) {
	case Nil, nil:
		return true
	}
	return false
}

// IsList reports whether v is Nil or a chain of cons cells ending in Nil.
func IsList(v Value) bool {
	for {
		switch c := v.(type) {
		case Nil, nil:
			return true
		case Cons:
			v = c.Cdr
		default:
			return false
		}
	}
}

// IsPair reports whether v is a cons cell whose cdr is an atom other than Nil.
func IsPair(v Value) bool {
	c, ok := v.(Cons)
	if !ok {
		return false
	}
	switch c.Cdr.(type) {
	case Nil, Cons, nil:
		return false
	}
	return true
}

func SliceToList(items []Value) Value {
	var list Value = Nil{}
	for i := len(items) - 1; i >= 0; i-- {
		list = NewCons(items[i], list)
	}
	return list
}

func ListToSlice(v Value) ([]Value, error) {
	var ret []Value
	for {
		switch c := v.(type) {
		case Nil, nil:
			return ret, nil
		case Cons:
			ret = append(ret, orNil(c.Car))
			v = c.Cdr
		default:
			return nil, ErrNotList
		}
	}
}

func Len(v Value) (int, error) {
	n := 0
	for {
		switch c := v.(type) {
		case Nil, nil:
			return n, nil
		case Cons:
			n++
			v = c.Cdr
		default:
			return 0, ErrNotList
		}
	}
}

// Equal compares structurally. Numbers compare by value, so NaN is never equal.
func Equal(a, b Value) bool {
	for {
		a, b = orNil(a), orNil(b)
		switch x := a.(type) {
		case Cons:
			y, ok := b.(Cons)
			if !ok || !Equal(x.Car, y.Car) {
				return false
			}
			a, b = x.Cdr, y.Cdr
		case Function:
			y, ok := b.(Function)
			if !ok || !Equal(x.Car, y.Car) {
				return false
			}
			a, b = x.Cdr, y.Cdr
		default:
			return a == b
		}
	}
}
