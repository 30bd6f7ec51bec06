package server

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var errBadRequest = errors.New("bad request")

var methodPrefix = []byte("GET /")

// pathStart is the index of the leading slash in "GET /".
const pathStart = 4

// parseRequest extracts the URL path from the first bytes of a request.
// Only "GET /..." request lines are accepted. Two consecutive dots anywhere
// in the path reject the request, which is the only traversal defense the
// resolver relies on. A space, '?' or '#' ends the path; query strings and
// fragments are discarded, and header bytes after the request line are never
// inspected.
func parseRequest(buf []byte) (string, error) {
	if !bytes.HasPrefix(buf, methodPrefix) {
		return "", errBadRequest
	}

	end := len(buf)
	lastByteWasDot := false
scan:
	for i := pathStart + 1; i < len(buf); i++ {
		switch buf[i] {
		case '.':
			if lastByteWasDot {
				return "", errBadRequest
			}
			lastByteWasDot = true
		case ' ', '?', '#':
			end = i
			break scan
		default:
			lastByteWasDot = false
		}
	}

	path := buf[pathStart:end]
	if !utf8.Valid(path) {
		return "", errBadRequest
	}
	return string(path), nil
}
