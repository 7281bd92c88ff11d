// Package palette provides the embedded tile palette shared by the renderers.
package palette

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
