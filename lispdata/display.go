package lispdata

import (
	"strconv"
	"strings"
)

func (s Symbol) String() string {
	return string(s)
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (Nil) String() string {
	return "nil"
}

func (c Cons) String() string {
	return Display(c)
}

func (f Function) String() string {
	return Display(f)
}

// Display renders v in canonical form.
func Display(v Value) string {
	var b strings.Builder
	Write(&b, v)
	return b.String()
}

func Write(b *strings.Builder, v Value) {
	switch v := v.(type) {

	case Nil, nil:
		b.WriteString("nil")

	case Symbol:
		b.WriteString(string(v))

	case String:
		b.WriteString(strconv.Quote(string(v)))

	case Number:
		b.WriteString(v.String())

	case Function:
		b.WriteString("#<function ")
		Write(b, Cons(v))
		b.WriteString(">")

	case Cons:
		if !IsList(v) {
			// every Cons in the cdr chain of a non-list is itself a non-list
			depth := 0
			var rest Value = v
			for {
				cell, ok := rest.(Cons)
				if !ok {
					break
				}
				b.WriteString("(")
				Write(b, cell.Car)
				b.WriteString(" . ")
				depth++
				rest = cell.Cdr
			}
			Write(b, rest)
			b.WriteString(strings.Repeat(")", depth))
			return
		}
		b.WriteString("(")
		Write(b, v.Car)
		for rest := v.Cdr; ; {
			cell, ok := rest.(Cons)
			if !ok {
				break
			}
			b.WriteString(" ")
			Write(b, cell.Car)
			rest = cell.Cdr
		}
		b.WriteString(")")

	}
}
