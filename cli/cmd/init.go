package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
	"github.com/ardnew/multitext/pkg"
	"github.com/ardnew/multitext/profile"
)

// configMarker is the section marker of generated configuration files.
const configMarker = "#"

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath, ok := kongVar(ctx, ConfigIdentifier)
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	err = i.buildDocument(ctx).Format(ctx, file)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildDocument constructs the configuration document from current flag
// values: one section per flag, named by the flag.
func (i *Init) buildDocument(ctx context.Context) *doc.Document {
	sections := []doc.Section{{
		Name: doc.HeaderSection,
		Body: fmt.Sprintf(
			"%s configuration. Each section sets the flag it is named after\n"+
				"to its body with surrounding whitespace removed. Flags given on\n"+
				"the command line take precedence.\n",
			pkg.Name),
	}}

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return doc.NewDocument(configMarker, sections...)
	}

	prefixIgnore := []string{"help", "version", "source", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if val, ok := flagValue(ktx, flag); ok {
			sections = append(sections, doc.Section{Name: flag.Name, Body: val + "\n"})
		}
	}

	return doc.NewDocument(configMarker, sections...)
}

// flagValue returns the current value of a flag as configuration text, or
// false if it is unset.
func flagValue(ktx *kong.Context, flag *kong.Flag) (string, bool) {
	val := ktx.FlagValue(flag)
	if val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, v != ""

	case []string:
		return strings.Join(v, ","), len(v) > 0

	case fmt.Stringer:
		s := v.String()

		return s, s != ""

	default:
		s := fmt.Sprint(v)

		return s, s != ""
	}
}
