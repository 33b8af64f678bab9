package source

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
)

// Stdin is the path that names standard input.
const Stdin = "-"

// ParseReader parses the lines of r. A read error takes precedence over the
// parse result and matches [doc.ErrReadInput].
func ParseReader(ctx context.Context, r io.Reader, opts ...doc.Option) (*doc.Document, error) {
	s := Lines(r)
	defer s.Close()

	d, err := doc.Parse(ctx, s.All(), opts...)

	if rerr := s.Err(); rerr != nil {
		return nil, rerr
	}

	return d, err
}

// ParseFile parses the named file, or standard input for [Stdin]. Errors of
// type [*doc.Error] carry path as their source.
func ParseFile(ctx context.Context, path string, opts ...doc.Option) (*doc.Document, error) {
	var r io.Reader = os.Stdin

	if path != Stdin {
		f, err := os.Open(path)
		if err != nil {
			return nil, doc.ErrOpenSource.Wrap(err).WithSource(path)
		}
		defer f.Close()

		r = f
	}

	d, err := ParseReader(ctx, r, opts...)
	if err != nil {
		var e *doc.Error
		if errors.As(err, &e) {
			return nil, e.WithSource(path)
		}

		return nil, err
	}

	log.DebugContext(ctx, "parsed source",
		slog.String("path", path),
		slog.String("marker", d.Marker()),
		slog.Int("header_line", d.HeaderLine()),
		slog.Int("sections", d.Len()),
	)

	return d, nil
}
