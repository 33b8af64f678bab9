package cmd

import (
	"errors"
	"testing"
)

func TestGet_Run(t *testing.T) {
	path := writeDoc(t, testDoc)

	ctx, out := testContext(t, Input{Path: path})
	if err := (&Get{Names: []string{"farewell", "greeting", "empty"}}).Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if want := "goodbye\nhello\nworld\n"; out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestGet_NotFound(t *testing.T) {
	path := writeDoc(t, testDoc)

	ctx, out := testContext(t, Input{Path: path})

	err := (&Get{Names: []string{"greeting", "nope"}}).Run(ctx)
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected nothing written, got %q", out.String())
	}
}
