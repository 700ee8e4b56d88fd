package lispread

import (
	"errors"
	"fmt"

	"github.com/reusee/tailisp/lispdata"
	"github.com/reusee/tailisp/lisplang"
)

var (
	ErrUnexpectedDot  = errors.New("unexpected '.'")
	ErrMissingDatum   = errors.New("expecting datum")
	ErrUnexpectedForm = errors.New("expecting ')'")
)

var readerMacros = map[lisplang.TokenKind]lispdata.Symbol{
	lisplang.TokenQuote:      "quote",
	lisplang.TokenQuasiquote: "quasiquote",
	lisplang.TokenUnquote:    "unquote",
}

type reader struct {
	tokens []lisplang.Token
	idx    int
}

// Read folds tokens into a sequence of top-level values.
func Read(tokens []lisplang.Token) ([]lispdata.Value, error) {
	r := &reader{
		tokens: tokens,
	}
	var ret []lispdata.Value
	for r.idx < len(r.tokens) {
		value, err := r.datum()
		if err != nil {
			return nil, err
		}
		ret = append(ret, value)
	}
	return ret, nil
}

func ReadString(source string) ([]lispdata.Value, error) {
	tokens, err := lisplang.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Read(tokens)
}

// ReadOne reads source that must hold exactly one value.
func ReadOne(source string) (lispdata.Value, error) {
	values, err := ReadString(source)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("expecting one value, got %d", len(values))
	}
	return values[0], nil
}

func (r *reader) current() (lisplang.Token, bool) {
	if r.idx >= len(r.tokens) {
		return lisplang.Token{}, false
	}
	return r.tokens[r.idx], true
}

// datum reads one value. Callers ensure a token remains.
func (r *reader) datum() (lispdata.Value, error) {
	tok := r.tokens[r.idx]
	r.idx++

	switch tok.Kind {

	case lisplang.TokenNumber:
		return lispdata.Number(tok.Number), nil

	case lisplang.TokenString:
		return lispdata.String(tok.Text), nil

	case lisplang.TokenSymbol:
		return lispdata.Sym(tok.Text), nil

	case lisplang.TokenQuote, lisplang.TokenQuasiquote, lisplang.TokenUnquote:
		next, ok := r.current()
		if !ok {
			return nil, lisplang.WithLocation(ErrMissingDatum, tok.Location)
		}
		if next.Kind == lisplang.TokenCloseParen || next.Kind == lisplang.TokenDot {
			return nil, lisplang.WithLocation(ErrMissingDatum, next.Location)
		}
		quoted, err := r.datum()
		if err != nil {
			return nil, err
		}
		return lispdata.List(readerMacros[tok.Kind], quoted), nil

	case lisplang.TokenOpenParen:
		return r.list(tok)

	case lisplang.TokenDot:
		return nil, lisplang.WithLocation(ErrUnexpectedDot, tok.Location)

	}

	// only reachable with token slices not produced by Tokenize
	return nil, lisplang.WithLocation(lisplang.UnmatchedError{Char: ')'}, tok.Location)
}

func (r *reader) list(open lisplang.Token) (lispdata.Value, error) {
	var items []lispdata.Value
	for {
		tok, ok := r.current()
		if !ok {
			return nil, lisplang.WithLocation(lisplang.UnmatchedError{Char: '('}, open.Location)
		}

		switch tok.Kind {

		case lisplang.TokenCloseParen:
			r.idx++
			return lispdata.SliceToList(items), nil

		case lisplang.TokenDot:
			if len(items) == 0 {
				return nil, lisplang.WithLocation(ErrUnexpectedDot, tok.Location)
			}
			r.idx++
			next, ok := r.current()
			if !ok {
				return nil, lisplang.WithLocation(ErrMissingDatum, tok.Location)
			}
			if next.Kind == lisplang.TokenCloseParen || next.Kind == lisplang.TokenDot {
				return nil, lisplang.WithLocation(ErrMissingDatum, next.Location)
			}
			tail, err := r.datum()
			if err != nil {
				return nil, err
			}
			closing, ok := r.current()
			if !ok {
				return nil, lisplang.WithLocation(lisplang.UnmatchedError{Char: '('}, open.Location)
			}
			if closing.Kind != lisplang.TokenCloseParen {
				return nil, lisplang.WithLocation(ErrUnexpectedForm, closing.Location)
			}
			r.idx++
			for i := len(items) - 1; i >= 0; i-- {
				tail = lispdata.NewCons(items[i], tail)
			}
			return tail, nil

		default:
			item, err := r.datum()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}
