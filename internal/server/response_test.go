package server

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
)

func TestWriteStatus(t *testing.T) {
	for _, table := range []struct {
		code int
		want string
	}{
		{http.StatusBadRequest, "HTTP/1.1 400 Bad Request\r\n\r\n"},
		{http.StatusNotFound, "HTTP/1.1 404 Not Found\r\n\r\n"},
	} {
		var buf bytes.Buffer
		writeStatus(&buf, table.code)
		if got, want := buf.String(), table.want; got != want {
			t.Errorf("%d: got %q but wanted %q", table.code, got, want)
		}
	}
}

func TestWriteRedirect(t *testing.T) {
	var buf bytes.Buffer
	writeRedirect(&buf, "/assets/")
	want := "HTTP/1.1 308 Permanent Redirect\r\nLocation: /assets/\r\n\r\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q but wanted %q", got, want)
	}
}

func TestWriteContent(t *testing.T) {
	var buf bytes.Buffer
	writeContent(&buf, "text/html", []byte("<h1>hi</h1>"))
	want := "HTTP/1.1 200 OK\r\nContent-Length: 11\r\nContent-Type: text/html\r\n\r\n<h1>hi</h1>"
	if got := buf.String(); got != want {
		t.Errorf("got %q but wanted %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteContentAbandonsBodyOnHeaderFailure(t *testing.T) {
	// Must not panic or retry; the body is simply never sent.
	writeContent(failingWriter{}, "text/html", []byte("<h1>hi</h1>"))
}
