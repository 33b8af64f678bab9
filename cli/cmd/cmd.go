package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
	"github.com/ardnew/multitext/source"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named id, if a kong context is stored in
// ctx.
func kongVar(ctx context.Context, id string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return "", false
	}

	v, ok := ktx.Model.Vars()[id]

	return v, ok
}

type (
	inputKey  struct{}
	outputKey struct{}
)

// Input describes the document a command operates on.
type Input struct {
	// Path is a file path or [source.Stdin].
	Path string
	// Search lists directories tried, in order, for a relative Path that
	// does not exist in the working directory.
	Search []string
	// Strict rejects documents with a blank section marker.
	Strict bool
}

// WithInput returns a new context.Context containing in.
func WithInput(ctx context.Context, in Input) context.Context {
	return context.WithValue(ctx, inputKey{}, in)
}

func inputFrom(ctx context.Context) Input {
	in, ok := ctx.Value(inputKey{}).(Input)
	if !ok || in.Path == "" {
		in.Path = source.Stdin
	}

	return in
}

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// resolve returns the path of the input file, trying each search directory
// for a relative path not found in the working directory.
func (in Input) resolve() string {
	if in.Path == source.Stdin || filepath.IsAbs(in.Path) {
		return in.Path
	}

	if _, err := os.Stat(in.Path); err == nil {
		return in.Path
	}

	for _, dir := range in.Search {
		if dir == "" {
			continue
		}

		p := filepath.Join(dir, in.Path)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}

	return in.Path
}

// load parses the input document described by ctx.
func load(ctx context.Context) (*doc.Document, error) {
	in := inputFrom(ctx)
	path := in.resolve()

	log.TraceContext(ctx, "load source",
		slog.String("path", in.Path),
		slog.String("resolved", path),
		slog.Bool("strict", in.Strict),
	)

	return source.ParseFile(ctx, path,
		doc.WithLogger(log.With(slog.String("path", path))),
		doc.WithStrictMarker(in.Strict),
	)
}
