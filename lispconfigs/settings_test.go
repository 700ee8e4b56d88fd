package lispconfigs

import (
	"slices"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tailisp/configs"
	"github.com/reusee/tailisp/diags"
)

func TestSettingsFromConfig(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/lisp.cue"}, schema)
		},
	).Call(func(
		opts diags.Options,
		format Format,
	) {
		if opts.ContextLines != 1 {
			t.Fatalf("got %d", opts.ContextLines)
		}
		if opts.Color {
			t.Fatal()
		}
		if format != FormatJSON {
			t.Fatalf("got %v", format)
		}
	})
}

func TestSettingsDefault(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		contextLines ContextLines,
		format Format,
		color Color,
	) {
		if contextLines != defaultContextLines {
			t.Fatalf("got %d", contextLines)
		}
		if format != FormatText {
			t.Fatalf("got %v", format)
		}
		if color {
			t.Fatal()
		}
	})
}

func TestSchemaRejectsUnknownFormat(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/bad.cue"}, schema)
	if err := loader.Validate(); err == nil {
		t.Fatal("should error")
	}
}

func TestExtensions(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{
				"testdata/lisp.cue",
				"testdata/user.cue",
			}, schema)
		},
	).Call(func(
		exts Extensions,
	) {
		if !slices.Equal(exts, Extensions{".lisp", ".el", ".lsp"}) {
			t.Fatalf("got %v", exts)
		}
	})

	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		exts Extensions,
	) {
		if !slices.Equal(exts, defaultExtensions) {
			t.Fatalf("got %v", exts)
		}
	})
}
