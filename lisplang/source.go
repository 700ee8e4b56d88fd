package lisplang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Line returns the text of the 1-based line, without the newline.
func (s *Source) Line(n int) (string, bool) {
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[idx], "\r"), true
}

func (s *Source) Tokenize() ([]Token, error) {
	return Tokenize(s.Content)
}
