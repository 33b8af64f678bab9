package doc

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Format writes d in multitext syntax: a declaration line built from the
// marker, the header body, then every other section in order. A body that
// does not end in a newline gets one.
//
// Parsing the output yields a document equal to d when d has its header
// section first and no body line starts with the marker.
func (d *Document) Format(_ context.Context, w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(d.marker)
	bw.WriteByte(' ')
	bw.WriteString(DeclarationSubstring)
	bw.WriteByte('\n')

	if body, ok := d.bodies[HeaderSection]; ok {
		writeBody(bw, body)
	}

	for name, body := range d.All() {
		if name == HeaderSection {
			continue
		}

		bw.WriteString(d.marker)
		bw.WriteByte(' ')
		bw.WriteString(name)
		bw.WriteByte('\n')
		writeBody(bw, body)
	}

	return bw.Flush()
}

func writeBody(w *bufio.Writer, body string) {
	if body == "" {
		return
	}

	w.WriteString(body)

	if !strings.HasSuffix(body, "\n") {
		w.WriteByte('\n')
	}
}

// String returns d in multitext syntax.
func (d *Document) String() string {
	var b strings.Builder

	_ = d.Format(context.Background(), &b)

	return b.String()
}

// MarshalJSON encodes d as an object of section bodies by name, keeping
// section order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	i := 0
	for name, body := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}

		i++

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// FormatJSON writes d as a JSON object followed by a newline. Indent greater
// than zero selects multi-line output with that many spaces per level.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return err
	}

	if indent > 0 {
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", strings.Repeat(" ", indent)); err != nil {
			return err
		}

		data = out.Bytes()
	}

	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}

// ToMapSlice returns the sections as an ordered YAML mapping.
func (d *Document) ToMapSlice() yaml.MapSlice {
	m := make(yaml.MapSlice, 0, len(d.names))
	for name, body := range d.All() {
		m = append(m, yaml.MapItem{Key: name, Value: body})
	}

	return m
}

// FormatYAML writes d as a YAML mapping. Indent greater than zero selects
// block style with multi-line bodies as literal scalars; otherwise the
// mapping is written in flow style with JSON-quoted scalars.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts,
			yaml.Indent(indent),
			yaml.UseLiteralStyleIfMultiline(true),
		)
	} else {
		opts = append(opts, yaml.Flow(true), yaml.JSON())
	}

	data, err := yaml.MarshalContext(ctx, d.ToMapSlice(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
