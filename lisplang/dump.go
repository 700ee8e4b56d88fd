package lisplang

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// DumpTokens writes "name:" followed by one "location kind" line per token.
func DumpTokens(w io.Writer, name string, tokens []Token) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s:\n", name)
	for _, token := range tokens {
		fmt.Fprintf(bw, "%s %s\n", token.Location, token)
	}
	return bw.Flush()
}

func DumpTokensJSON(w io.Writer, name string, tokens []Token) error {
	if tokens == nil {
		tokens = []Token{}
	}
	encoder := json.NewEncoder(w)
	return encoder.Encode(struct {
		Name   string  `json:"name"`
		Tokens []Token `json:"tokens"`
	}{
		Name:   name,
		Tokens: tokens,
	})
}
