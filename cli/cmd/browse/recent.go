package browse

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	baseRecent = "recent.utf8"
	maxRecent  = 64
)

// recent is the list of section names chosen in earlier sessions, most
// recent first, persisted one name per line.
type recent struct {
	path  string
	names []string
}

func loadRecent(dir string) (*recent, error) {
	r := &recent{}
	if dir == "" {
		return r, nil
	}

	r.path = filepath.Join(dir, baseRecent)

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, nil
		}

		return r, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if name := sc.Text(); !slices.Contains(r.names, name) {
			r.names = append(r.names, name)
		}
	}

	return r, sc.Err()
}

// add moves name to the front and saves the list.
func (r *recent) add(name string) error {
	if strings.ContainsAny(name, "\r\n") {
		return nil
	}

	if i := slices.Index(r.names, name); i >= 0 {
		r.names = slices.Delete(r.names, i, i+1)
	}

	r.names = slices.Insert(r.names, 0, name)
	if len(r.names) > maxRecent {
		r.names = r.names[:maxRecent]
	}

	if r.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(r.path, []byte(strings.Join(r.names, "\n")+"\n"), 0o600)
}

// order returns names with recently chosen ones first, otherwise keeping
// their order.
func (r *recent) order(names []string) []string {
	out := make([]string, 0, len(names))

	for _, name := range r.names {
		if slices.Contains(names, name) {
			out = append(out, name)
		}
	}

	for _, name := range names {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}

	return out
}
