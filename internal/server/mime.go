package server

import "path/filepath"

// contentTypes is the full set of file types this server will ever serve.
// Anything outside the table looks like 404 to the client even when the
// file exists; serving a new type is a table change, not a code change.
var contentTypes = map[string]string{
	"html":  "text/html",
	"css":   "text/css",
	"js":    "application/javascript",
	"svg":   "image/svg+xml",
	"woff2": "font/woff2",
	"ttf":   "font/ttf",
}

// contentTypeFor looks up the MIME type for a file path by its extension.
// Unknown extensions are unsupported, never sniffed.
func contentTypeFor(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	contentType, ok := contentTypes[ext[1:]]
	return contentType, ok
}
