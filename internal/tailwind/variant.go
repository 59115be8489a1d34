package tailwind

import (
	"fmt"
	"slices"

	"github.com/felixbrock/lemonai/internal/domain"
)

// Variant names a preset descriptor.
type Variant string

const (
	// VariantComponents scans templ components.
	VariantComponents Variant = "components"
	// VariantComponentsWide scans templ components and adds width fractions.
	VariantComponentsWide Variant = "components-wide"
	// VariantTemplates scans HTML templates and adds width fractions.
	VariantTemplates Variant = "templates"
)

const (
	ComponentsGlob = "./internal/components/**/*.templ"
	TemplatesGlob  = "./templates/**/*.html"
)

var variants = map[Variant]Options{
	VariantComponents:     {Content: []string{ComponentsGlob}},
	VariantComponentsWide: {Content: []string{ComponentsGlob}, SpacingFractions: true},
	VariantTemplates:      {Content: []string{TemplatesGlob}, SpacingFractions: true},
}

// Variants returns the preset names in sorted order.
func Variants() []Variant {
	names := make([]Variant, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// VariantOptions returns a copy of the preset options for name.
func VariantOptions(name Variant) (Options, error) {
	opts, ok := variants[name]
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, name)
	}
	opts.Content = slices.Clone(opts.Content)
	return opts, nil
}

// ForVariant builds the preset descriptor for name.
func ForVariant(name Variant) (Descriptor, error) {
	opts, err := VariantOptions(name)
	if err != nil {
		return Descriptor{}, err
	}
	return New(opts), nil
}
