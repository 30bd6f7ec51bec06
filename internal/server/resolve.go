package server

import (
	"os"
	"strings"
)

const indexFile = "index.html"

// resolveTarget maps a parsed request path onto the public directory by
// plain concatenation; the parser has already rejected traversal sequences.
// A directory reached without a trailing slash yields a redirect location
// instead of a file, so that relative asset links resolve on the client. A
// directory with a trailing slash is served through its index file.
func resolveTarget(root, path string) (file string, location string) {
	full := root + path
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		if !strings.HasSuffix(path, "/") {
			return "", path + "/"
		}
		full += indexFile
	}
	return full, ""
}
