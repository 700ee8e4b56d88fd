package lisplang

import "fmt"

// Location is a 1-based line and column in the source.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

var startLocation = Location{
	Line:   1,
	Column: 1,
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
