package web

import "embed"

// StaticFS embedded admin page assets
//
//go:embed index.html
var StaticFS embed.FS
