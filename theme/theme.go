package theme

import (
	"embed"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/logging"
	"github.com/mmuldo/hexref/palette"
)

// ErrUnknownFormat is returned for an export format with no template.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export template.
type Format string

const (
	CSS      Format = "css"
	Tailwind Format = "tailwind"
	SCSS     Format = "scss"
)

// Formats lists the built-in formats.
var Formats = []Format{CSS, Tailwind, SCSS}

//go:embed templates/*.tpl
var builtin embed.FS

// Theme is a named 50..950 scale derived from one base colour.
type Theme struct {
	Name  string
	Base  colorspace.RGB
	Steps []palette.ScaleStep
}

// Create builds the scale for base under name.
func Create(name string, base colorspace.RGB) *Theme {
	return &Theme{
		Name:  name,
		Base:  base,
		Steps: palette.Scale(base),
	}
}

// Map returns the scale keyed by step, e.g. "500" -> "#3366CC".
func (t *Theme) Map() map[string]string {
	m := make(map[string]string, len(t.Steps))
	for _, s := range t.Steps {
		m[fmt.Sprint(s.Key)] = s.Color.Hex()
	}
	return m
}

// Context is the template context: name, base and the ordered steps, each
// with key and hex.
func (t *Theme) Context() pongo2.Context {
	steps := make([]map[string]interface{}, len(t.Steps))
	for i, s := range t.Steps {
		steps[i] = map[string]interface{}{
			"key": s.Key,
			"hex": s.Color.Hex(),
		}
	}
	return pongo2.Context{
		"name":  t.Name,
		"base":  t.Base.Hex(),
		"steps": steps,
	}
}

// Render executes the template for f. When dir is not empty, dir/<f>.tpl
// is used instead of the built-in template.
func (t *Theme) Render(f Format, dir string) (string, error) {
	tpl, err := load(f, dir)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(t.Context())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", f, err)
	}
	logging.Logger().Debug("rendered theme", "name", t.Name, "format", f)
	return strings.TrimRight(out, "\n"), nil
}

// Write renders f and writes it to file, creating parent directories.
func (t *Theme) Write(file string, f Format, dir string) error {
	out, err := t.Render(f, dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}
	if err := ioutil.WriteFile(file, []byte(out+"\n"), 0644); err != nil {
		return err
	}
	logging.Logger().Info("wrote theme", "file", file, "format", f)
	return nil
}

func load(f Format, dir string) (*pongo2.Template, error) {
	name := string(f) + ".tpl"
	if dir != "" {
		tpl, err := pongo2.FromFile(path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		return tpl, nil
	}

	src, err := builtin.ReadFile(path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return pongo2.FromString(string(src))
}
