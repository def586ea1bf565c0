package console

import "embed"

//go:embed locales
var assetFS embed.FS
