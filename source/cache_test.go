package source

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ardnew/multitext/doc"
)

func TestParseString_Cached(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	ctx := context.Background()

	a, err := ParseString(ctx, sample)
	if err != nil {
		t.Fatal(err)
	}

	b, err := ParseString(ctx, sample)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Error("expected the cached document to be shared")
	}

	c, err := ParseString(ctx, sample, doc.WithStrictMarker(false))
	if err != nil {
		t.Fatal(err)
	}

	if c == a {
		t.Error("expected options to bypass the cache")
	}

	if !c.Equal(a) {
		t.Error("expected equal documents with and without the cache")
	}

	ClearCache()

	d, err := ParseString(ctx, sample)
	if err != nil {
		t.Fatal(err)
	}

	if d == a {
		t.Error("expected a new document after ClearCache")
	}
}

func TestParseString_CachedError(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	for range 2 {
		_, err := ParseString(context.Background(), "a\nb\n")
		if !errors.Is(err, doc.ErrMissingHeader) {
			t.Fatalf("expected ErrMissingHeader, got %v", err)
		}

		if line, _ := doc.WrapError(err).Line(); line != 2 {
			t.Errorf("expected line 2, got %d", line)
		}
	}
}

func TestParseString_Concurrent(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	const n = 32

	docs := make([]*doc.Document, n)

	var wg sync.WaitGroup

	for i := range n {
		wg.Go(func() {
			d, err := ParseString(context.Background(), sample)
			if err != nil {
				t.Error(err)

				return
			}

			docs[i] = d
		})
	}

	wg.Wait()

	for i := 1; i < n; i++ {
		if docs[i] != docs[0] {
			t.Fatalf("goroutine %d got a different document", i)
		}
	}
}

func BenchmarkParseString(b *testing.B) {
	ctx := context.Background()

	b.Run("cached", func(b *testing.B) {
		ClearCache()
		b.ReportAllocs()

		for b.Loop() {
			if _, err := ParseString(ctx, sample); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("uncached", func(b *testing.B) {
		b.ReportAllocs()

		for b.Loop() {
			if _, err := ParseString(ctx, sample, doc.WithStrictMarker(false)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
