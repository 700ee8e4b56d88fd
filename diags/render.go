package diags

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/reusee/tailisp/lisplang"
)

type Options struct {
	// number of lines shown before the offending one
	ContextLines int
	Color        bool
}

var DefaultOptions = Options{
	ContextLines: 3,
}

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	caretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
)

// Render writes err with the surrounding source lines and a caret under the
// offending column. Errors without a location get only the summary line.
func Render(w io.Writer, src *lisplang.Source, err error, opts Options) error {
	if err == nil {
		return nil
	}

	style := func(s lipgloss.Style, str string) string {
		if !opts.Color {
			return str
		}
		return s.Render(str)
	}

	var sb strings.Builder

	var locErr *lisplang.Error
	if src != nil && errors.As(err, &locErr) {
		loc := locErr.Location
		first := max(loc.Line-max(opts.ContextLines, 0), 1)
		last := min(loc.Line, len(src.Lines))
		gutterWidth := len(strconv.Itoa(last))

		for n := first; n <= last; n++ {
			line, _ := src.Line(n)
			sb.WriteString(style(gutterStyle, fmt.Sprintf("%*d | ", gutterWidth, n)))
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		if line, ok := src.Line(loc.Line); ok {
			sb.WriteString(strings.Repeat(" ", gutterWidth+3))
			sb.WriteString(caretPadding(line, loc.Column))
			sb.WriteString(style(caretStyle, "^"))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(style(errorStyle, "error:"))
	sb.WriteString(" ")
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	_, werr := io.WriteString(w, sb.String())
	return werr
}

// caretPadding returns the whitespace that aligns a caret under the 1-based column.
func caretPadding(line string, column int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	// columns past the end of the line
	if i < column {
		sb.WriteString(strings.Repeat(" ", column-i))
	}
	return sb.String()
}
