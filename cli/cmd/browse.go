package cmd

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/multitext/cli/cmd/browse"
	"github.com/ardnew/multitext/log"
	"github.com/ardnew/multitext/source"
)

// Browse interactively picks a section and prints its body.
type Browse struct {
	NoHistory bool `help:"Do not read or record recently chosen sections." name:"no-history"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	d, err := load(ctx)
	if err != nil {
		return err
	}

	cacheDir := ""
	if !b.NoHistory {
		cacheDir, _ = kongVar(ctx, CacheIdentifier)
	}

	// The picker draws on stderr so the chosen body can be piped.
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}

	// Standard input carried the document, so keys come from the terminal.
	if inputFrom(ctx).Path == source.Stdin {
		opts = append(opts, tea.WithInputTTY())
	}

	return browse.Run(ctx, d, outputFrom(ctx), cacheDir,
		log.With(slog.String("command", "browse")), opts...)
}
