package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
	"github.com/ardnew/multitext/source"
)

// resolve returns a [kong.ConfigurationLoader] that reads configuration
// files written as multitext documents.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config")
//
// Every section other than the header names a flag, in hyphen or underscore
// form, and its body with surrounding whitespace removed is the flag value:
//
//	# multitext header
//	Anything here is ignored.
//	# log-level
//	debug
//	# log_pretty
//	false
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-pretty=false
//
// Command-line flags override config file values. A file that is not a
// multitext document is ignored with a warning.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		d, err := loadConfig(ctx, r)
		if err != nil {
			log.WarnContext(ctx, "configuration ignored", slog.Any("error", err))

			return config{}, nil
		}

		return configFrom(d), nil
	}
}

// loadConfig parses the configuration read from r. Documents are cached by
// content, so a configuration shared by several loaders is parsed once.
func loadConfig(ctx context.Context, r io.Reader) (*doc.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, doc.ErrReadInput.Wrap(err)
	}

	return source.ParseString(ctx, string(data))
}

// config implements [kong.Resolver] for multitext configuration documents.
type config map[string]string

func configFrom(d *doc.Document) config {
	c := make(config, d.Len())

	for name, body := range d.All() {
		if name == doc.HeaderSection || name == "" {
			continue
		}

		c[name] = strings.TrimSpace(body)
	}

	return c
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but configuration sections
	// may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
