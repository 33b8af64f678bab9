package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/mung"

	"github.com/ardnew/multitext/pkg"
)

const (
	// baseConfig is the base name of the configuration file.
	baseConfig = "config"

	// baseSections is the configuration subdirectory searched first for
	// relative source paths.
	baseSections = "sections"
)

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// exeRename rewrites executable names that should not become the
// configuration directory name.
var exeRename = []struct {
	rex *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`^__debug_bin\d+$`), pkg.Name}, // dlv default output
	{regexp.MustCompile(`^\.+`), ""},                   // leading dot(s)
}

// basePrefix returns the name of the configuration and cache directories:
// the base name of the executable without extension, rewritten by
// exeRename.
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		for _, r := range exeRename {
			id = r.rex.ReplaceAllString(id, r.rep)
		}

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir returns the directory from primary, or home joined with fallback,
// or the working directory, joined with basePrefix.
func userDir(primary func() (string, error), fallback string) string {
	dir, err := primary()
	if err != nil {
		if dir, err = os.UserHomeDir(); err == nil {
			dir = filepath.Join(dir, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir returns the cache directory path used for transient files.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath returns the path formed by joining the configuration directory
// with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// searchPath returns the directories searched for relative source paths:
// the sections configuration subdirectory, then each entry of the
// [pkg.EnvPath] environment variable.
func searchPath() []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(pkg.EnvPath)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(configPath(baseSections)),
	).String()

	return filepath.SplitList(list)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}

// joinSearchPath formats dirs for help text.
func joinSearchPath(dirs []string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}
