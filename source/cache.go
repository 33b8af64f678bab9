package source

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
)

// cache maps the xxh3 hash of a source string to its *entry.
var cache sync.Map

type entry struct {
	once   sync.Once
	source string
	doc    *doc.Document
	err    error
}

// ParseString parses s. Without options the result is cached by content, so
// equal strings are parsed once and share the returned [doc.Document].
func ParseString(ctx context.Context, s string, opts ...doc.Option) (*doc.Document, error) {
	if len(opts) > 0 {
		log.TraceContext(ctx, "cache bypass", slog.Int("options", len(opts)))

		return doc.Parse(ctx, SplitLines(s), opts...)
	}

	hash := xxh3.HashString(s)

	value, hit := cache.LoadOrStore(hash, &entry{source: s})

	e, _ := value.(*entry)
	if e == nil || e.source != s {
		log.TraceContext(ctx, "cache collision",
			slog.String("hash", strconv.FormatUint(hash, 16)))

		return doc.Parse(ctx, SplitLines(s))
	}

	log.TraceContext(ctx, "cache lookup",
		slog.String("hash", strconv.FormatUint(hash, 16)),
		slog.Int("bytes", len(s)),
		slog.Bool("hit", hit),
	)

	e.once.Do(func() {
		e.doc, e.err = doc.Parse(ctx, SplitLines(s))
	})

	return e.doc, e.err
}

// ClearCache drops every cached result.
func ClearCache() {
	cache.Clear()
}
