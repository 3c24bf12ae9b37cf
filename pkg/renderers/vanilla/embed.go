package vanilla

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-surveyform/pkg/renderers/vanilla/components"
)

//go:embed templates/*.tmpl templates/components/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName    = components.StylesheetName
	RuntimeScriptName = components.RuntimeScriptName
)

// TemplatesFS exposes the embedded template bundle so callers can copy and
// override individual templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded runtime assets (CSS and JS) so callers can
// serve them over HTTP when inline assets are disabled.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func readAsset(name string) (string, error) {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
