package tailwind

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"text/template"
)

//go:embed config.js.tmpl
var configTemplate string

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var configJS = template.Must(template.New("tailwind.config.js").
	Funcs(template.FuncMap{"quote": jsString, "key": objectKey}).
	Parse(configTemplate))

// jsString quotes s as a JSON string literal, which JavaScript parses
// identically.
func jsString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("quote %q: %w", s, err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// objectKey leaves identifiers bare and quotes anything else.
func objectKey(name string) (string, error) {
	if identifier.MatchString(name) {
		return name, nil
	}
	return jsString(name)
}

// RenderJS writes the descriptor as a tailwind.config.js module.
func (d Descriptor) RenderJS(w io.Writer) error {
	if err := configJS.Execute(w, d); err != nil {
		return fmt.Errorf("render tailwind config: %w", err)
	}
	return nil
}
