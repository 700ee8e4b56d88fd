package lisplang

import (
	"fmt"
	"strconv"
)

type Token struct {
	Location Location  `json:"location"`
	Kind     TokenKind `json:"kind"`
	Number   float64   `json:"number,omitempty"`
	Text     string    `json:"text,omitempty"`
}

type TokenKind uint8

const (
	TokenOpenParen TokenKind = iota
	TokenCloseParen
	TokenNumber
	TokenSymbol
	TokenString
	TokenQuote
	TokenQuasiquote
	TokenUnquote
	TokenDot
)

var tokenKindNames = [...]string{
	TokenOpenParen:  "OpenParen",
	TokenCloseParen: "CloseParen",
	TokenNumber:     "Number",
	TokenSymbol:     "Symbol",
	TokenString:     "String",
	TokenQuote:      "Quote",
	TokenQuasiquote: "Quasiquote",
	TokenUnquote:    "Unquote",
	TokenDot:        "Dot",
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// String returns the debug form of the token kind and payload, e.g. Symbol("foo").
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return t.Kind.String() + "(" + strconv.FormatFloat(t.Number, 'f', -1, 64) + ")"
	case TokenSymbol, TokenString:
		return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
	}
	return t.Kind.String()
}
