package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/multitext/source"
)

const testDoc = `preamble
## multitext header
sample document
## greeting
hello
world
## env
B=2
A="hello world"
## empty
## farewell
goodbye
`

// writeDoc writes content to a new file in a temporary directory and returns
// its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.mt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// testContext returns a context reading path and writing to the returned
// buffer.
func testContext(t *testing.T, in Input) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	ctx := WithInput(context.Background(), in)
	ctx = WithOutput(ctx, &buf)

	return ctx, &buf
}

func TestInputFrom_Default(t *testing.T) {
	if in := inputFrom(context.Background()); in.Path != source.Stdin {
		t.Errorf("expected %q, got %q", source.Stdin, in.Path)
	}

	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Error("expected os.Stdout by default")
	}
}

func TestInput_Resolve(t *testing.T) {
	base := t.TempDir()
	first := filepath.Join(base, "first")
	second := filepath.Join(base, "second")

	for _, dir := range []string{first, second} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			t.Fatal(err)
		}
	}

	for path, content := range map[string]string{
		filepath.Join(second, "notes.mt"): "x",
		filepath.Join(first, "todo.mt"):   "x",
		filepath.Join(second, "todo.mt"):  "x",
	} {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	// A directory with the searched name must be skipped.
	if err := os.MkdirAll(filepath.Join(first, "notes.mt"), 0o700); err != nil {
		t.Fatal(err)
	}

	search := []string{"", first, second}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"stdin", source.Stdin, source.Stdin},
		{"absolute", filepath.Join(base, "abs.mt"), filepath.Join(base, "abs.mt")},
		{"first match wins", "todo.mt", filepath.Join(first, "todo.mt")},
		{"directories skipped", "notes.mt", filepath.Join(second, "notes.mt")},
		{"not found", "missing.mt", "missing.mt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{Path: tt.path, Search: search}
			if got := in.resolve(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
