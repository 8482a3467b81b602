// Package web holds the embedded single-page operator UI. The page is plain
// HTML talking to the JSON API; it carries no state of its own.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
