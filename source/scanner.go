package source

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/multitext/doc"
)

// MaxLineSize is the longest line, in bytes, a [Scanner] accepts.
const MaxLineSize = 1 << 20

// Scanner yields the lines of a reader without their terminators. A "\r"
// before the newline is removed too.
type Scanner struct {
	rc   io.ReadCloser
	sc   *bufio.Scanner
	err  error
	line int
}

// Lines returns a [Scanner] reading r ahead of the consumer.
// The caller must call [Scanner.Close].
func Lines(r io.Reader) *Scanner {
	rc := readahead.NewReader(r)

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &Scanner{rc: rc, sc: sc}
}

// All returns the remaining lines. Iteration stops at the end of input or at
// the first read error; see [Scanner.Err].
func (s *Scanner) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.sc.Scan() {
			s.line++
			if !yield(s.sc.Text()) {
				return
			}
		}

		if err := s.sc.Err(); err != nil {
			s.err = doc.ErrReadInput.Wrap(err)
		}
	}
}

// Line returns the number of lines yielded so far.
func (s *Scanner) Line() int { return s.line }

// Err returns the read error that ended iteration, if any. It matches
// [doc.ErrReadInput].
func (s *Scanner) Err() error { return s.err }

// Close stops the read-ahead goroutine. It does not close the underlying
// reader.
func (s *Scanner) Close() error { return s.rc.Close() }

// SplitLines returns the lines of s the way a [Scanner] would: without
// terminators, and without an empty line after a final newline.
func SplitLines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !yield(line) {
				return
			}
		}
	}
}
