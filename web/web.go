// Package web embeds the hosted checkout templates so the binary is
// self-contained.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
