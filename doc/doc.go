// Package doc parses multitext documents: named text sections stored in a
// single line-oriented stream.
//
// # Format
//
// A document declares itself on the first line that contains the text
// "multitext header". Whatever precedes that text on the line, minus trailing
// whitespace, becomes the section marker. Lines before the declaration are
// ignored.
//
//	Anything up here is ignored.
//	### multitext header
//	text of the header section
//	### first thing
//	text of "first thing"
//	###second thing
//	text of "second thing"
//
// Every following line that starts with the marker opens a new section named
// by the rest of that line, trimmed. All other lines belong to the open
// section, each with a newline appended. The declaration line itself opens the
// section named "multitext header".
//
// A later section with the same name replaces the body of an earlier one but
// keeps its position in [Document.Names].
//
// A marker that is empty or only whitespace is legal: every line starting
// with it (every line, for an empty marker) opens a section. [WithStrictMarker]
// rejects such documents instead.
//
// # Parsing
//
// [Parse] consumes any sequence of lines ([iter.Seq] of string or []byte)
// without line terminators. Reading files and attaching file names to errors
// is left to the caller; see package source.
//
// The only failure is a missing declaration, reported as [ErrMissingHeader]
// with the number of the last line read.
package doc
