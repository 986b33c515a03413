// Package views embeds the application's HTML templates so the rendered
// pages ship inside the binary and tests run from any working directory.
package views

import "embed"

//go:embed layouts users posts tags errors
var FS embed.FS
