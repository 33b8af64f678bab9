package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Section is the environment of a list filter expression.
type Section struct {
	Name  string `expr:"name"`
	Body  string `expr:"body"`
	Lines int    `expr:"lines"`
	Bytes int    `expr:"bytes"`
	Index int    `expr:"index"`
}

// List prints the section names of the document in order of first
// appearance.
type List struct {
	Where string `help:"Only list sections for which the expression is true (fields: name, body, lines, bytes, index)." placeholder:"EXPR" short:"w"`
	Count bool   `help:"Print the number of matching sections instead of their names."                                      short:"c"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	filter, err := compileFilter(l.Where)
	if err != nil {
		return err
	}

	d, err := load(ctx)
	if err != nil {
		return err
	}

	out := outputFrom(ctx)
	count, index := 0, 0

	for name, body := range d.All() {
		sec := Section{
			Name:  name,
			Body:  body,
			Lines: strings.Count(body, "\n"),
			Bytes: len(body),
			Index: index,
		}
		index++

		ok, err := filter.match(sec)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		count++

		if !l.Count {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
	}

	if l.Count {
		_, err = fmt.Fprintln(out, count)
	}

	return err
}

// filter is a compiled boolean expression over a [Section]. The zero filter
// matches everything.
type filter struct {
	source  string
	program *vm.Program
}

func compileFilter(source string) (filter, error) {
	if strings.TrimSpace(source) == "" {
		return filter{}, nil
	}

	program, err := expr.Compile(source, expr.Env(Section{}), expr.AsBool())
	if err != nil {
		return filter{}, ErrInvalidFilter.
			With(slog.String("expr", source)).
			Wrap(err)
	}

	return filter{source: source, program: program}, nil
}

func (f filter) match(sec Section) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, sec)
	if err != nil {
		return false, ErrInvalidFilter.
			With(slog.String("expr", f.source), slog.String("name", sec.Name)).
			Wrap(err)
	}

	ok, _ := out.(bool)

	return ok, nil
}
