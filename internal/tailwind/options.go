package tailwind

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides is the YAML form of option overrides. A nil field keeps the
// base value.
type overrides struct {
	Content          []string          `yaml:"content"`
	SpacingFractions *bool             `yaml:"spacing_fractions"`
	Font             string            `yaml:"font"`
	Colors           map[string]string `yaml:"colors"`
	Plugins          []string          `yaml:"plugins"`
}

// LoadOptions reads overrides from the YAML file at path and applies them
// on top of base. Content replaces the base globs; colors and plugins are
// merged.
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	return ParseOptions(data, base)
}

// ParseOptions is LoadOptions for in-memory YAML.
func ParseOptions(data []byte, base Options) (Options, error) {
	var o overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}

	out := base
	out.Colors = maps.Clone(base.Colors)
	out.Plugins = append([]string(nil), base.Plugins...)

	if len(o.Content) > 0 {
		out.Content = o.Content
	}
	if o.SpacingFractions != nil {
		out.SpacingFractions = *o.SpacingFractions
	}
	if o.Font != "" {
		out.Font = o.Font
	}
	if len(o.Colors) > 0 {
		if out.Colors == nil {
			out.Colors = make(map[string]string, len(o.Colors))
		}
		maps.Copy(out.Colors, o.Colors)
	}
	out.Plugins = append(out.Plugins, o.Plugins...)

	return out, nil
}
