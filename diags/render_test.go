package diags

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/tailisp/lisplang"
)

func render(t *testing.T, name, content string, opts Options) string {
	t.Helper()
	src := lisplang.NewSource(name, content)
	_, err := src.Tokenize()
	if err == nil {
		t.Fatal("should error")
	}
	var sb strings.Builder
	if err := Render(&sb, src, err, opts); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func TestRenderSingleLine(t *testing.T) {
	got := render(t, "a.lisp", "(foo 1x)", DefaultOptions)
	expected := "1 | (foo 1x)\n" +
		"          ^\n" +
		"error: trailing garbage on line 1 column 7\n"
	if got != expected {
		t.Fatalf("got\n%s", got)
	}
}

func TestRenderContextLines(t *testing.T) {
	content := "a\nb\nc\nd\ne\n(f \"g\nh"
	got := render(t, "a.lisp", content, DefaultOptions)
	expected := "3 | c\n" +
		"4 | d\n" +
		"5 | e\n" +
		"6 | (f \"g\n" +
		"       ^\n" +
		"error: unmatched '\"' on line 6 column 4\n"
	if got != expected {
		t.Fatalf("got\n%s", got)
	}

	got = render(t, "a.lisp", content, Options{ContextLines: 0})
	if !strings.HasPrefix(got, "6 | (f") {
		t.Fatalf("got\n%s", got)
	}
}

func TestRenderGutterWidth(t *testing.T) {
	content := strings.Repeat("x\n", 9) + "(y"
	got := render(t, "a.lisp", content, DefaultOptions)
	lines := strings.Split(got, "\n")
	if lines[0] != " 7 | x" {
		t.Fatalf("got %q", lines[0])
	}
	if lines[3] != "10 | (y" {
		t.Fatalf("got %q", lines[3])
	}
	if lines[4] != "     ^" {
		t.Fatalf("got %q", lines[4])
	}
}

func TestRenderWideAndTab(t *testing.T) {
	got := render(t, "a.lisp", "\t(世界 \\)", DefaultOptions)
	lines := strings.Split(got, "\n")
	if lines[1] != "    \t      ^" {
		t.Fatalf("got %q", lines[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	got := render(t, "a.lisp", "", DefaultOptions)
	expected := "1 | \n" +
		"    ^\n" +
		"error: empty program on line 1 column 1\n"
	if got != expected {
		t.Fatalf("got %q", got)
	}
}

func TestRenderPlainError(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, nil, errors.New("boom"), DefaultOptions); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "error: boom\n" {
		t.Fatalf("got %q", sb.String())
	}
	sb.Reset()
	if err := Render(&sb, nil, nil, DefaultOptions); err != nil {
		t.Fatal(err)
	}
	if sb.Len() != 0 {
		t.Fatal()
	}
}

func TestRenderColor(t *testing.T) {
	got := render(t, "a.lisp", ")", Options{ContextLines: 3, Color: true})
	if !strings.Contains(got, "error:") || !strings.Contains(got, "unmatched ')'") {
		t.Fatalf("got %q", got)
	}
}
