package static

import "embed"

// IndexHTML contains the embedded prompt editor page.
//
//go:embed index.html
var IndexHTML string

// Libs holds the browser scripts served under /static/libs/.
//
//go:embed libs/*.js
var Libs embed.FS
