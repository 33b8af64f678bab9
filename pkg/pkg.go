//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the multitext module embedded at build
// time from the VERSION file, without surrounding whitespace.
var Version = strings.TrimSpace(version)

const (
	// Name is the command and module identifier. It appears in help text and
	// in the default configuration and cache paths.
	Name = "multitext"
	// Description is the one-line summary shown in help output.
	Description = "Named text sections in a single stream"
	// EnvPath is the environment variable holding extra directories that are
	// searched for relative source paths.
	EnvPath = "MULTITEXT_PATH"
)

// AuthorInfo is an author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
