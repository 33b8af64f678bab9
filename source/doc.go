// Package source reads multitext documents from files, readers and strings.
//
// It splits input into lines for [doc.Parse], reads ahead on a separate
// goroutine, and attaches the input's name to parse errors. Strings parsed
// with default options are cached by content.
package source
