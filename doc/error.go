package doc

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors. Errors derived from them with [Error.AtLine],
// [Error.WithSource], [Error.With] or [Error.Wrap] still match with
// [errors.Is].
var (
	ErrMissingHeader = NewError("missing multitext header")
	ErrBlankMarker   = NewError("blank section marker")
	ErrReadInput     = NewError("failed to read input")
	ErrOpenSource    = NewError("failed to open source")
)

// Error is a parse or input error. It may carry a 1-based line number, a
// source identifier such as a file name, a wrapped cause, and attributes for
// structured logging.
type Error struct {
	kind      *Error
	msg       string
	err       error
	attrs     []slog.Attr
	source    string
	line      int
	hasLine   bool
	hasSource bool
}

// NewError returns a new sentinel error with the given message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.kind = e

	return e
}

// WrapError returns err as an *Error, either the one already in its chain or
// a new Error wrapping it.
func WrapError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{err: err}
}

func (e *Error) clone() *Error {
	c := *e
	c.attrs = slices.Clip(c.attrs)

	return &c
}

// Line returns the line number the error refers to, if any.
func (e *Error) Line() (int, bool) { return e.line, e.hasLine }

// Source returns the identifier of the input the error refers to, if any.
func (e *Error) Source() (string, bool) { return e.source, e.hasSource }

// Message returns the error message without location or cause.
func (e *Error) Message() string { return e.msg }

// AtLine returns a copy of e located at line n.
func (e *Error) AtLine(n int) *Error {
	c := e.clone()
	c.line, c.hasLine = n, true

	return c
}

// WithSource returns a copy of e attributed to the named source. The line
// number and message are unchanged.
func (e *Error) WithSource(name string) *Error {
	c := e.clone()
	c.source, c.hasSource = name, true

	return c
}

// Wrap returns a copy of e with err as its cause.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With returns a copy of e with attrs appended for structured logging.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = append(c.attrs, attrs...)

	return c
}

// Error formats e as "source:line: message: cause", omitting absent parts.
func (e *Error) Error() string {
	var b strings.Builder

	if e.hasSource {
		b.WriteString(e.source)
		b.WriteByte(':')
	}

	if e.hasLine {
		b.WriteString(strconv.Itoa(e.line))
		b.WriteByte(':')
	}

	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	if b.Len() > 0 && len(part) > 0 {
		b.WriteByte(' ')
	}

	b.WriteString(strings.Join(part, ": "))

	return b.String()
}

// Unwrap returns the cause of e.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e derives from the same sentinel as target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t != nil && e.kind != nil && e.kind == t.kind
}

// LogValue implements [slog.LogValuer].
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	if e.hasSource {
		attrs = append(attrs, slog.String("source", e.source))
	}

	if e.hasLine {
		attrs = append(attrs, slog.Int("line", e.line))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
