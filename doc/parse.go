package doc

//go:generate go tool stringer --linecomment --type phase --output phase_string.go

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode"
)

const (
	// DeclarationSubstring is the text whose first occurrence declares a
	// document and defines its marker.
	DeclarationSubstring = "multitext header"

	// HeaderSection names the section opened by the declaration line.
	HeaderSection = "multitext header"
)

// Line is the type of a single input line, without its terminator.
type Line interface{ ~string | ~[]byte }

// Parse reads lines until the sequence ends and returns the sections found.
//
// The context is only used for logging; the parse is not cancellable. If no
// line contains [DeclarationSubstring], the error matches [ErrMissingHeader]
// and is located at the last line read (0 for no lines).
func Parse[L Line](ctx context.Context, lines iter.Seq[L], opts ...Option) (*Document, error) {
	m := newMachine(ctx, opts...)

	for line := range lines {
		if err := m.step(string(line)); err != nil {
			return nil, err
		}
	}

	return m.finish()
}

// ParseLines is [Parse] over a slice.
func ParseLines[L Line](ctx context.Context, lines []L, opts ...Option) (*Document, error) {
	return Parse(ctx, slices.Values(lines), opts...)
}

// phase is the state of a [machine].
type phase int

const (
	phaseDiscovering  phase = iota // discovering
	phaseAccumulating              // accumulating
)

// machine is the two-phase parser. It starts in phaseDiscovering, moves to
// phaseAccumulating on the declaration line, and never moves back.
type machine struct {
	ctx   context.Context
	opts  options
	doc   *Document
	name  string
	body  strings.Builder
	phase phase
	line  int
}

func newMachine(ctx context.Context, opts ...Option) *machine {
	return &machine{ctx: ctx, opts: makeOptions(opts...), phase: phaseDiscovering}
}

// step consumes the next line.
func (m *machine) step(line string) error {
	m.line++

	switch m.phase {
	case phaseDiscovering:
		return m.discover(line)
	case phaseAccumulating:
		m.accumulate(line)
	}

	return nil
}

func (m *machine) discover(line string) error {
	i := strings.Index(line, DeclarationSubstring)
	if i < 0 {
		return nil
	}

	marker := strings.TrimRightFunc(line[:i], unicode.IsSpace)

	if m.opts.strictMarker && strings.TrimSpace(marker) == "" {
		return ErrBlankMarker.AtLine(m.line).With(slog.String("marker", marker))
	}

	m.doc = newDocument(marker, m.line)
	m.name = HeaderSection
	m.phase = phaseAccumulating

	m.opts.logger.TraceContext(m.ctx, "marker discovered",
		slog.Int("line", m.line),
		slog.String("marker", marker),
	)

	return nil
}

func (m *machine) accumulate(line string) {
	if strings.HasPrefix(line, m.doc.marker) {
		m.close()
		m.name = strings.TrimSpace(line[len(m.doc.marker):])

		return
	}

	m.body.WriteString(line)
	m.body.WriteByte('\n')
}

// close stores the open section.
func (m *machine) close() {
	replaced := m.doc.set(m.name, m.body.String())

	m.opts.logger.TraceContext(m.ctx, "section closed",
		slog.Int("line", m.line),
		slog.String("name", m.name),
		slog.Int("bytes", m.body.Len()),
		slog.Bool("replaced", replaced),
	)

	m.body.Reset()
}

// finish ends the input and returns the result.
func (m *machine) finish() (*Document, error) {
	if m.phase == phaseDiscovering {
		return nil, ErrMissingHeader.AtLine(m.line)
	}

	m.close()

	return m.doc, nil
}
