package lisplang

import (
	"io"
	"strconv"
	"unicode"
)

type tokenizer struct {
	scanner *Scanner
	tokens  []Token
	// locations of open parens not yet closed
	openParens []Location
}

// Tokenize splits source into tokens in a single pass.
// On failure the returned error is an *Error.
func Tokenize(source string) ([]Token, error) {
	t := &tokenizer{
		scanner: NewScanner(source),
	}
	for t.scanner.NotEmpty() {
		if err := t.step(); err != nil {
			return nil, err
		}
	}

	if len(t.openParens) > 0 {
		// report the outermost group
		return nil, &Error{
			Err:      UnmatchedError{Char: '('},
			Location: t.openParens[0],
		}
	}

	if len(t.tokens) == 0 {
		return nil, &Error{
			Err:      ErrEmpty,
			Location: t.scanner.Location(),
		}
	}

	return t.tokens, nil
}

func TokenizeReader(r io.Reader) ([]Token, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Tokenize(string(content))
}

func (t *tokenizer) emit(loc Location, kind TokenKind) {
	t.tokens = append(t.tokens, Token{
		Location: loc,
		Kind:     kind,
	})
}

func (t *tokenizer) fail(err error) error {
	return &Error{
		Err:      err,
		Location: t.scanner.Location(),
	}
}

func (t *tokenizer) step() error {
	s := t.scanner
	loc := s.Location()
	r, _ := s.Peek()

	switch {

	case r == ';':
		s.TakeUntil(func(r rune) bool {
			return r == '\n'
		})

	case r == '(':
		s.Next()
		t.openParens = append(t.openParens, loc)
		t.emit(loc, TokenOpenParen)

	case r == ')':
		if len(t.openParens) == 0 {
			return t.fail(UnmatchedError{Char: ')'})
		}
		t.openParens = t.openParens[:len(t.openParens)-1]
		s.Next()
		t.emit(loc, TokenCloseParen)

	case isDigit(r):
		return t.number()

	case IsSymbolic(r):
		return t.symbol()

	case r == '"':
		return t.quoted()

	case r == '\'':
		s.Next()
		t.emit(loc, TokenQuote)

	case r == '`':
		s.Next()
		t.emit(loc, TokenQuasiquote)

	case r == ',':
		s.Next()
		t.emit(loc, TokenUnquote)

	case r == '.':
		s.Next()
		t.emit(loc, TokenDot)

	case unicode.IsSpace(r):
		s.TakeWhile(unicode.IsSpace)

	default:
		return t.fail(UnknownCharError{Char: r})
	}

	return nil
}

// atDelimiter reports whether the scanner is at whitespace, a paren or end of input.
func (t *tokenizer) atDelimiter() bool {
	return t.scanner.IsEmpty() || t.scanner.NextMatches(isDelimiter)
}

func (t *tokenizer) number() error {
	s := t.scanner
	loc := s.Location()
	text, _ := s.TakeWhile(isDigit)
	if _, ok := s.Take('.'); ok {
		fraction, ok := s.TakeWhile(isDigit)
		if !ok {
			return t.fail(ErrTrailingGarbage)
		}
		text += "." + fraction
	}
	if !t.atDelimiter() {
		return t.fail(ErrTrailingGarbage)
	}
	// digits only, so the sole possible error is overflow to +Inf
	n, _ := strconv.ParseFloat(text, 64)
	t.tokens = append(t.tokens, Token{
		Location: loc,
		Kind:     TokenNumber,
		Number:   n,
		Text:     text,
	})
	return nil
}

func (t *tokenizer) symbol() error {
	s := t.scanner
	loc := s.Location()
	name, _ := s.TakeWhile(IsSymbolic)
	if !t.atDelimiter() {
		return t.fail(ErrTrailingGarbage)
	}
	t.tokens = append(t.tokens, Token{
		Location: loc,
		Kind:     TokenSymbol,
		Text:     name,
	})
	return nil
}

func (t *tokenizer) quoted() error {
	s := t.scanner
	loc := s.Location()
	s.Next()
	// no escapes and no multi-line strings
	text, _ := s.TakeUntil(func(r rune) bool {
		return r == '"' || r == '\n'
	})
	if _, ok := s.Take('"'); !ok {
		return &Error{
			Err:      UnmatchedError{Char: '"'},
			Location: loc,
		}
	}
	t.tokens = append(t.tokens, Token{
		Location: loc,
		Kind:     TokenString,
		Text:     text,
	})
	return nil
}
