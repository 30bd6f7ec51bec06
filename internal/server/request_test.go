package server

import "testing"

func TestParseRequest(t *testing.T) {
	for _, table := range []struct {
		desc string
		raw  string
		path string
		ok   bool
	}{
		{"root", "GET / HTTP/1.1\r\n\r\n", "/", true},
		{"file", "GET /index.html HTTP/1.1\r\n\r\n", "/index.html", true},
		{"with headers", "GET /a.css HTTP/1.1\r\nHost: x\r\n\r\n", "/a.css", true},
		{"query dropped", "GET /page?x=1 HTTP/1.1\r\n\r\n", "/page", true},
		{"fragment dropped", "GET /page#top HTTP/1.1\r\n\r\n", "/page", true},
		{"no terminator", "GET /partial", "/partial", true},
		{"single dots ok", "GET /a.b.c.html HTTP/1.1\r\n\r\n", "/a.b.c.html", true},
		{"trailing slash", "GET /assets/ HTTP/1.1\r\n\r\n", "/assets/", true},
		{"dot dot", "GET /../secret.txt HTTP/1.1\r\n\r\n", "", false},
		{"dot dot deep", "GET /a/b/../../etc/passwd HTTP/1.1\r\n\r\n", "", false},
		{"dot dot at end", "GET /a/.. HTTP/1.1\r\n\r\n", "", false},
		{"post", "POST / HTTP/1.1\r\n\r\n", "", false},
		{"missing slash", "GET index.html HTTP/1.1\r\n\r\n", "", false},
		{"lowercase method", "get / HTTP/1.1\r\n\r\n", "", false},
		{"empty", "", "", false},
		{"too short", "GET ", "", false},
		{"bad utf8", "GET /\xff\xfe HTTP/1.1\r\n\r\n", "", false},
	} {
		path, err := parseRequest([]byte(table.raw))
		if got, want := err == nil, table.ok; got != want {
			t.Errorf("%s: got ok %v but wanted %v (err: %v)", table.desc, got, want, err)
			continue
		}
		if got, want := path, table.path; got != want {
			t.Errorf("%s: got path %q but wanted %q", table.desc, got, want)
		}
	}
}
