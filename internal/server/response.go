package server

import (
	"fmt"
	"io"
	"net/http"
)

var statusText = map[int]string{
	http.StatusBadRequest: "Bad Request",
	http.StatusNotFound:   "Not Found",
}

// writeStatus sends a bodyless response such as "HTTP/1.1 404 Not Found".
func writeStatus(w io.Writer, code int) {
	fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n\r\n", code, statusText[code])
}

// writeRedirect sends a permanent redirect to location.
func writeRedirect(w io.Writer, location string) {
	fmt.Fprintf(w, "HTTP/1.1 308 Permanent Redirect\r\nLocation: %s\r\n\r\n", location)
}

// writeContent sends the file bytes preceded by their length and type. A
// failed header write abandons the body; the caller drops the connection
// either way, so write errors are never surfaced to the client.
func writeContent(w io.Writer, contentType string, content []byte) {
	_, err := fmt.Fprintf(w, "HTTP/1.1 200 OK\r\nContent-Length: %d\r\nContent-Type: %s\r\n\r\n",
		len(content), contentType)
	if err != nil {
		return
	}
	w.Write(content)
}
