package lispdata

// Value is one of Symbol, String, Number, Cons, Function or Nil.
type Value interface {
	isValue()
}

type Symbol string

type String string

type Number float64

// Cons is a cell owning its car and cdr.
type Cons struct {
	Car Value
	Cdr Value
}

// Function is reserved for callables and carries a cons-shaped payload.
type Function Cons

// Nil is the empty list.
type Nil struct{}

func (Symbol) isValue()   {}
func (String) isValue()   {}
func (Number) isValue()   {}
func (Cons) isValue()     {}
func (Function) isValue() {}
func (Nil) isValue()      {}

func Sym(name string) Value {
	if name == "nil" {
		return Nil{}
	}
	return Symbol(name)
}

func Str(s string) Value {
	return String(s)
}

func Num[T ~int | ~int64 | ~float32 | ~float64](n T) Value {
	return Number(float64(n))
}

func List(items ...Value) Value {
	return SliceToList(items)
}
