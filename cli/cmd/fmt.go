package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/multitext/doc"
)

// Fmt parses the document and writes it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as multitext (default)."`
	JSON   JSON   `cmd:""                    help:"Format as a JSON object."`
	YAML   YAML   `cmd:""                    help:"Format as a YAML mapping."`
}

// Native writes the document in multitext syntax.
type Native struct{}

// Run executes the fmt native command.
func (*Native) Run(ctx context.Context) error {
	return format(ctx, "native", func(d *doc.Document) error {
		return d.Format(ctx, outputFrom(ctx))
	})
}

// JSON writes the document as a JSON object of bodies by section name.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) error {
	return format(ctx, "json", func(d *doc.Document) error {
		return d.FormatJSON(ctx, outputFrom(ctx), j.Indent)
	})
}

// YAML writes the document as a YAML mapping of bodies by section name.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) error {
	return format(ctx, "yaml", func(d *doc.Document) error {
		return d.FormatYAML(ctx, outputFrom(ctx), y.Indent)
	})
}

func format(ctx context.Context, name string, write func(*doc.Document) error) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	d, err := load(ctx)
	if err != nil {
		return doc.WrapError(err).With(slog.String("format", name))
	}

	return write(d)
}
