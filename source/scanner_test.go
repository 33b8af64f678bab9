package source

import (
	"bufio"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ardnew/multitext/doc"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "no final newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "final newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines", input: "\n\nx\n\n", want: []string{"", "", "x", ""}},
		{name: "interior cr kept", input: "a\rb\n", want: []string{"a\rb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Lines(strings.NewReader(tt.input))
			defer s.Close()

			got := slices.Collect(s.All())
			if err := s.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}

			if s.Line() != len(tt.want) {
				t.Errorf("expected %d lines counted, got %d", len(tt.want), s.Line())
			}

			if split := slices.Collect(SplitLines(tt.input)); !slices.Equal(split, tt.want) {
				t.Errorf("SplitLines: expected %q, got %q", tt.want, split)
			}
		})
	}
}

func TestLines_ReadError(t *testing.T) {
	errBoom := errors.New("boom")

	s := Lines(io.MultiReader(strings.NewReader("a\nb\n"), iotest.ErrReader(errBoom)))
	defer s.Close()

	got := slices.Collect(s.All())

	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("expected lines before the error, got %q", got)
	}

	err := s.Err()
	if !errors.Is(err, doc.ErrReadInput) {
		t.Fatalf("expected ErrReadInput, got %v", err)
	}

	if !errors.Is(err, errBoom) {
		t.Errorf("expected cause to be kept, got %v", err)
	}
}

func TestLines_TooLong(t *testing.T) {
	s := Lines(strings.NewReader(strings.Repeat("x", MaxLineSize+1) + "\n"))
	defer s.Close()

	for range s.All() {
		t.Fatal("expected no lines")
	}

	if err := s.Err(); !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("expected bufio.ErrTooLong, got %v", err)
	}
}

func TestSplitLines_StopsEarly(t *testing.T) {
	var got []string

	for line := range SplitLines("a\nb\nc\n") {
		got = append(got, line)
		if line == "b" {
			break
		}
	}

	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("expected %q, got %q", []string{"a", "b"}, got)
	}
}
