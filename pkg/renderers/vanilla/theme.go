package vanilla

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla/components"
)

// ThemeName is the name of the built-in manifest.
const ThemeName = "survey"

// Built-in variants.
const (
	VariantLight = "light"
	VariantDark  = "dark"
)

// StylesheetAssetKey is resolved through RendererConfig.AssetURL. When it
// yields a URL the renderer links it after the base stylesheet.
const StylesheetAssetKey = "vanilla.stylesheet"

// ErrUnknownVariant reports a variant the selected manifest does not define.
var ErrUnknownVariant = errors.New("vanilla: unknown theme variant")

// DefaultManifest returns the built-in theme. Tokens map one to one onto the
// CSS custom properties read by the embedded stylesheet.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"formgen-page":    "#f3f4f6",
			"formgen-surface": "#ffffff",
			"formgen-text":    "#111827",
			"formgen-muted":   "#4b5563",
			"formgen-border":  "#d1d5db",
			"formgen-accent":  "#3b82f6",
			"formgen-danger":  "#ef4444",
		},
		Variants: map[string]theme.Variant{
			VariantLight: {},
			VariantDark: {
				Tokens: map[string]string{
					"formgen-page":    "#111827",
					"formgen-surface": "#1f2937",
					"formgen-text":    "#f9fafb",
					"formgen-muted":   "#9ca3af",
					"formgen-border":  "#374151",
					"formgen-accent":  "#60a5fa",
					"formgen-danger":  "#f87171",
				},
			},
		},
	}
}

// Variants lists the variants of the built-in manifest.
func Variants() []string {
	return []string{VariantLight, VariantDark}
}

// manifestSelector satisfies theme.ThemeSelector over a fixed manifest.
type manifestSelector struct {
	manifest *theme.Manifest
	fallback string
}

// NewManifestSelector selects variants of manifest. An empty variant resolves
// to fallback.
func NewManifestSelector(manifest *theme.Manifest, fallback string) theme.ThemeSelector {
	return manifestSelector{manifest: manifest, fallback: fallback}
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.manifest == nil {
		return nil, errors.New("vanilla: theme manifest is nil")
	}
	if name = strings.TrimSpace(name); name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("vanilla: theme %q not found", name)
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.fallback
	}
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
		}
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}

// DefaultTheme resolves a variant of the built-in manifest. An empty variant
// resolves to light.
func DefaultTheme(variant string) (*theme.RendererConfig, error) {
	return ResolveTheme(NewManifestSelector(DefaultManifest(), VariantLight), ThemeName, variant)
}

// ResolveTheme asks selector for a theme and converts the selection into
// renderer configuration.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("vanilla: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return ThemeConfig(selection), nil
}

// ThemeConfig merges the manifest with its selected variant. Variant tokens,
// templates and asset files override the base entries. Every token becomes a
// CSS custom property of the same name. Component partials not named by the
// manifest fall back to the embedded templates.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	partials := mergeStrings(defaultPartials(), manifest.Templates, variant.Templates)

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file := files[key]
			if file == "" {
				return ""
			}
			if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
				return file
			}
			return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "./")
		},
	}
}

func defaultPartials() map[string]string {
	return map[string]string{
		components.PartialInput:    "templates/components/input.tmpl",
		components.PartialSelect:   "templates/components/select.tmpl",
		components.PartialTextarea: "templates/components/textarea.tmpl",
	}
}

func mergeStrings(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for key, value := range layer {
			if strings.TrimSpace(value) == "" {
				continue
			}
			out[key] = value
		}
	}
	return out
}
