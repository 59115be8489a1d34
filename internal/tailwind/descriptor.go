// Package tailwind builds the style-build descriptor consumed by the
// Tailwind CSS build tool: content globs to scan for class names, theme
// extensions and plugins.
//
// The descriptor is static data. This package only produces it, as a
// tailwind.config.js file or as resolved JSON; it never runs the scan.
package tailwind

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/felixbrock/lemonai/internal/domain"
)

const (
	// AppFont is prepended to the default sans font stack.
	AppFont = "Inter var"

	// FormsPlugin adds form-element utility classes.
	FormsPlugin = "@tailwindcss/forms"

	// MainColorName and MainColor form the brand color token.
	MainColorName = "lemonaiMain"
	MainColor     = "#d65cf7"
)

// DefaultFontFamilies mirrors the build tool's default font stacks, used
// when a descriptor is resolved outside the build tool.
var DefaultFontFamilies = map[string][]string{
	"sans": {
		"ui-sans-serif", "system-ui", "sans-serif",
		`"Apple Color Emoji"`, `"Segoe UI Emoji"`, `"Segoe UI Symbol"`, `"Noto Color Emoji"`,
	},
	"serif": {"ui-serif", "Georgia", "Cambria", `"Times New Roman"`, "Times", "serif"},
	"mono": {
		"ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas",
		`"Liberation Mono"`, `"Courier New"`, "monospace",
	},
}

// spacingFractions are the optional width tokens.
var spacingFractions = map[string]string{
	"half": "50%",
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// FontStack is an ordered font list, optionally followed by one of the
// build tool's default stacks.
type FontStack struct {
	Fonts   []string
	Default string // key into the default theme's fontFamily, empty for none
}

// Extension augments the base theme without replacing it.
type Extension struct {
	FontFamily map[string]FontStack
	Colors     map[string]string
	MaxWidth   map[string]string
	MinWidth   map[string]string
}

// Theme holds the theme customization.
type Theme struct {
	Extend Extension
}

// Descriptor is the configuration object the build tool expects.
type Descriptor struct {
	Content []string
	Theme   Theme
	Plugins []string
}

// Options parameterize a descriptor.
type Options struct {
	Content          []string
	SpacingFractions bool
	Font             string
	Colors           map[string]string
	Plugins          []string
}

// New builds a descriptor from opts. The brand color and the forms plugin
// are always present.
func New(opts Options) Descriptor {
	font := opts.Font
	if font == "" {
		font = AppFont
	}

	colors := map[string]string{MainColorName: MainColor}
	for name, value := range opts.Colors {
		if name == MainColorName {
			continue
		}
		colors[name] = value
	}

	plugins := []string{FormsPlugin}
	for _, p := range opts.Plugins {
		if !slices.Contains(plugins, p) {
			plugins = append(plugins, p)
		}
	}

	ext := Extension{
		FontFamily: map[string]FontStack{
			"sans": {Fonts: []string{font}, Default: "sans"},
		},
		Colors: colors,
	}
	if opts.SpacingFractions {
		ext.MaxWidth = maps.Clone(spacingFractions)
		ext.MinWidth = maps.Clone(spacingFractions)
	}

	return Descriptor{
		Content: slices.Clone(opts.Content),
		Theme:   Theme{Extend: ext},
		Plugins: plugins,
	}
}

// Validate checks that the descriptor has the keys and value types the
// build tool expects.
func (d Descriptor) Validate() error {
	var errs []error

	if len(d.Content) == 0 {
		errs = append(errs, errors.New("content: at least one glob is required"))
	}
	for _, g := range d.Content {
		if !doublestar.ValidatePattern(globPattern(g)) {
			errs = append(errs, fmt.Errorf("content: invalid glob %q", g))
		}
	}

	for name, stack := range d.Theme.Extend.FontFamily {
		if len(stack.Fonts) == 0 && stack.Default == "" {
			errs = append(errs, fmt.Errorf("fontFamily.%s: empty font stack", name))
		}
		if stack.Default != "" {
			if _, ok := DefaultFontFamilies[stack.Default]; !ok {
				errs = append(errs, fmt.Errorf("fontFamily.%s: unknown default stack %q", name, stack.Default))
			}
		}
	}

	for name, value := range d.Theme.Extend.Colors {
		if !hexColor.MatchString(value) {
			errs = append(errs, fmt.Errorf("colors.%s: %q is not a hex color", name, value))
		}
	}

	for i, p := range d.Plugins {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("plugins[%d]: empty plugin name", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidDescriptor, errors.Join(errs...))
	}
	return nil
}

// Resolved is the descriptor with default font stacks expanded inline,
// in the JSON shape of the build tool's config object.
type Resolved struct {
	Content []string      `json:"content"`
	Theme   ResolvedTheme `json:"theme"`
	Plugins []string      `json:"plugins"`
}

// ResolvedTheme wraps the resolved theme extension.
type ResolvedTheme struct {
	Extend ResolvedExtension `json:"extend"`
}

// ResolvedExtension is Extension with plain font lists.
type ResolvedExtension struct {
	FontFamily map[string][]string `json:"fontFamily"`
	Colors     map[string]string   `json:"colors"`
	MaxWidth   map[string]string   `json:"maxWidth,omitempty"`
	MinWidth   map[string]string   `json:"minWidth,omitempty"`
}

// Resolve expands default font stacks.
func (d Descriptor) Resolve() Resolved {
	fonts := make(map[string][]string, len(d.Theme.Extend.FontFamily))
	for name, stack := range d.Theme.Extend.FontFamily {
		fonts[name] = slices.Concat(stack.Fonts, DefaultFontFamilies[stack.Default])
	}

	return Resolved{
		Content: slices.Clone(d.Content),
		Theme: ResolvedTheme{Extend: ResolvedExtension{
			FontFamily: fonts,
			Colors:     maps.Clone(d.Theme.Extend.Colors),
			MaxWidth:   maps.Clone(d.Theme.Extend.MaxWidth),
			MinWidth:   maps.Clone(d.Theme.Extend.MinWidth),
		}},
		Plugins: slices.Clone(d.Plugins),
	}
}

// globPattern strips the leading "./" the build tool accepts but fs.FS
// patterns do not.
func globPattern(g string) string {
	return strings.TrimPrefix(g, "./")
}
