package doc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "sentinel",
			err:  ErrMissingHeader,
			want: "missing multitext header",
		},
		{
			name: "line zero is still shown",
			err:  ErrMissingHeader.AtLine(0),
			want: "0: missing multitext header",
		},
		{
			name: "source and line",
			err:  ErrMissingHeader.AtLine(12).WithSource("notes.mt"),
			want: "notes.mt:12: missing multitext header",
		},
		{
			name: "source and cause",
			err:  ErrReadInput.Wrap(io.ErrUnexpectedEOF).WithSource("-"),
			want: "-: failed to read input: unexpected EOF",
		},
		{
			name: "foreign error",
			err:  WrapError(errors.New("boom")),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := ErrOpenSource.Wrap(io.EOF).WithSource("x").AtLine(1).With(slog.Int("n", 1))

	if !errors.Is(err, ErrOpenSource) {
		t.Error("expected derived error to match its sentinel")
	}

	if errors.Is(err, ErrReadInput) {
		t.Error("expected derived error not to match another sentinel")
	}

	if !errors.Is(err, io.EOF) {
		t.Error("expected derived error to match its cause")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if !errors.Is(wrapped, ErrOpenSource) {
		t.Error("expected match through fmt.Errorf")
	}

	if errors.Is(WrapError(io.EOF), ErrOpenSource) {
		t.Error("expected foreign error not to match a sentinel")
	}
}

func TestError_CopiesDoNotAlias(t *testing.T) {
	base := ErrBlankMarker.With(slog.String("a", "1"))
	x := base.With(slog.String("b", "2"))
	y := base.With(slog.String("c", "3"))

	if len(base.attrs) != 1 || len(x.attrs) != 2 || len(y.attrs) != 2 {
		t.Fatalf("unexpected attr counts: %d %d %d", len(base.attrs), len(x.attrs), len(y.attrs))
	}

	if x.attrs[1].Key != "b" || y.attrs[1].Key != "c" {
		t.Errorf("attrs aliased: %v %v", x.attrs, y.attrs)
	}

	if _, ok := ErrBlankMarker.Line(); ok {
		t.Error("expected sentinel to stay without a line")
	}
}

func TestError_WithSourceKeepsLocation(t *testing.T) {
	e := ErrMissingHeader.AtLine(4).WithSource("a")

	if line, ok := e.Line(); !ok || line != 4 {
		t.Errorf("expected line 4, got %d (present=%v)", line, ok)
	}

	if src, ok := e.Source(); !ok || src != "a" {
		t.Errorf("expected source %q, got %q (present=%v)", "a", src, ok)
	}

	if e.Message() != ErrMissingHeader.Message() {
		t.Errorf("expected message %q, got %q", ErrMissingHeader.Message(), e.Message())
	}
}

func TestError_LogValue(t *testing.T) {
	e := ErrMissingHeader.AtLine(3).WithSource("f").With(slog.Int("bytes", 9))

	got := map[string]string{}
	for _, a := range e.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error":  "missing multitext header",
		"source": "f",
		"line":   "3",
		"bytes":  "9",
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %q: expected %q, got %q", k, v, got[k])
		}
	}

	if _, ok := got["cause"]; ok {
		t.Error("expected no cause attr")
	}
}
