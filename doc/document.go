package doc

import (
	"iter"
	"maps"
	"slices"
)

// Section is a named block of text.
type Section struct {
	Name string
	Body string
}

// Document is the result of a parse: section bodies by name, in the order
// the names were first seen. A Document is not modified after construction
// and may be shared between goroutines.
type Document struct {
	bodies     map[string]string
	marker     string
	names      []string
	headerLine int
}

func newDocument(marker string, headerLine int) *Document {
	return &Document{
		bodies:     make(map[string]string),
		marker:     marker,
		headerLine: headerLine,
	}
}

// NewDocument returns a document with the given marker and sections. Later
// sections replace earlier ones of the same name, as in a parse.
func NewDocument(marker string, sections ...Section) *Document {
	d := newDocument(marker, 0)

	for _, s := range sections {
		d.set(s.Name, s.Body)
	}

	return d
}

// set stores body under name and reports whether it replaced a body.
func (d *Document) set(name, body string) bool {
	_, replaced := d.bodies[name]
	if !replaced {
		d.names = append(d.names, name)
	}

	d.bodies[name] = body

	return replaced
}

// Marker returns the section marker.
func (d *Document) Marker() string { return d.marker }

// HeaderLine returns the line number of the declaration, or 0 for documents
// not produced by a parse.
func (d *Document) HeaderLine() int { return d.headerLine }

// Len returns the number of distinct section names.
func (d *Document) Len() int { return len(d.names) }

// Get returns the body of the named section.
func (d *Document) Get(name string) (string, bool) {
	body, ok := d.bodies[name]

	return body, ok
}

// Has reports whether the named section exists.
func (d *Document) Has(name string) bool {
	_, ok := d.bodies[name]

	return ok
}

// Names returns the section names in order of first appearance.
func (d *Document) Names() iter.Seq[string] {
	return slices.Values(d.names)
}

// All returns the sections in order of first appearance.
func (d *Document) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range d.names {
			if !yield(name, d.bodies[name]) {
				return
			}
		}
	}
}

// Sections returns a copy of the sections in order of first appearance.
func (d *Document) Sections() []Section {
	s := make([]Section, 0, len(d.names))
	for name, body := range d.All() {
		s = append(s, Section{Name: name, Body: body})
	}

	return s
}

// Map returns a copy of the sections as a map.
func (d *Document) Map() map[string]string {
	return maps.Clone(d.bodies)
}

// Equal reports whether d and o have the same marker and the same sections
// in the same order.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}

	return d.marker == o.marker &&
		slices.Equal(d.names, o.names) &&
		maps.Equal(d.bodies, o.bodies)
}
