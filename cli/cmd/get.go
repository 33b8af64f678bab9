package cmd

import (
	"context"
	"io"
	"log/slog"
)

// Get prints the bodies of the named sections.
type Get struct {
	Names []string `arg:"" help:"Section names, printed in the order given." name:"name"`
}

// Run executes the get command. All names are checked before anything is
// written.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	d, err := load(ctx)
	if err != nil {
		return err
	}

	bodies := make([]string, len(g.Names))

	for i, name := range g.Names {
		body, ok := d.Get(name)
		if !ok {
			return ErrSectionNotFound.With(slog.String("name", name))
		}

		bodies[i] = body
	}

	out := outputFrom(ctx)

	for _, body := range bodies {
		if _, err := io.WriteString(out, body); err != nil {
			return err
		}
	}

	return nil
}
