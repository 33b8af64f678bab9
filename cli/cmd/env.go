package cmd

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

// Env prints a section whose body is in dotenv syntax as normalized
// KEY="value" lines, sorted by key.
type Env struct {
	Name   string `arg:"" help:"Section holding dotenv assignments." name:"name"`
	Export bool   `help:"Prefix each line with 'export '." short:"x"`
}

// Run executes the env command.
func (e *Env) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	d, err := load(ctx)
	if err != nil {
		return err
	}

	body, ok := d.Get(e.Name)
	if !ok {
		return ErrSectionNotFound.With(slog.String("name", e.Name))
	}

	vars, err := godotenv.Unmarshal(body)
	if err != nil {
		return ErrInvalidDotenv.With(slog.String("name", e.Name)).Wrap(err)
	}

	if len(vars) == 0 {
		return nil
	}

	text, err := godotenv.Marshal(vars)
	if err != nil {
		return ErrInvalidDotenv.With(slog.String("name", e.Name)).Wrap(err)
	}

	var b strings.Builder

	for line := range strings.Lines(text + "\n") {
		if e.Export {
			b.WriteString("export ")
		}

		b.WriteString(line)
	}

	_, err = io.WriteString(outputFrom(ctx), b.String())

	return err
}
