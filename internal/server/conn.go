package server

import (
	"net"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/RobbyCBennett/Serve/internal/models"
)

// writeTimeout bounds response writes so a peer that stops reading cannot
// stall the poll loop.
const writeTimeout = time.Second

// serveConn attempts one full read/parse/resolve/respond cycle and reports
// whether the connection should stay in the live set. A would-block on the
// leading read keeps the connection for a later pass; everything else ends
// it, because a completed cycle always drops the connection (no keep-alive)
// and a closed or broken peer has nothing left to say.
func (srv *Server) serveConn(conn net.Conn) bool {
	conn.SetReadDeadline(time.Now().Add(srv.PollInterval))
	n, err := conn.Read(srv.readBuf)
	if isTimeout(err) {
		return true
	}
	if err != nil || n == 0 {
		return false
	}

	// Bytes beyond the parse buffer are read and thrown away so the socket
	// is clean before the response goes out.
	if !srv.drain(conn) {
		return false
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	srv.respond(conn, srv.readBuf[:n])
	return false
}

// drain discards request bytes past the parse buffer until the peer goes
// quiet. It reports whether the connection is still worth responding to: a
// peer that closed mid-request gets nothing, and a shutdown request aborts
// the connection outright.
func (srv *Server) drain(conn net.Conn) bool {
	for {
		if !srv.running.Load() {
			return false
		}
		conn.SetReadDeadline(time.Now().Add(srv.PollInterval))
		n, err := conn.Read(srv.trashBuf)
		switch {
		case err == nil && n > 0:
			continue
		case isTimeout(err):
			// No more data right now; respond with what was parsed.
			return true
		default:
			// Peer closed or the transport broke.
			return false
		}
	}
}

// respond parses the buffered request and writes exactly one response.
func (srv *Server) respond(conn net.Conn, buf []byte) {
	path, err := parseRequest(buf)
	if err != nil {
		writeStatus(conn, http.StatusBadRequest)
		srv.record(conn, "", http.StatusBadRequest, 0, "")
		return
	}

	file, location := resolveTarget(srv.PublicDir, path)
	if location != "" {
		writeRedirect(conn, location)
		srv.record(conn, path, http.StatusPermanentRedirect, 0, "")
		return
	}

	contentType, ok := contentTypeFor(file)
	if !ok {
		writeStatus(conn, http.StatusNotFound)
		srv.record(conn, path, http.StatusNotFound, 0, "")
		return
	}

	content, err := os.ReadFile(file)
	if err != nil {
		writeStatus(conn, http.StatusNotFound)
		srv.record(conn, path, http.StatusNotFound, 0, "")
		return
	}

	writeContent(conn, contentType, content)
	srv.record(conn, path, http.StatusOK, len(content), contentType)
}

// record appends one row to the access log, if one is configured. Logging
// failures never affect the response; the bytes are already on the wire.
func (srv *Server) record(conn net.Conn, path string, status, bytes int, contentType string) {
	if srv.access == nil {
		return
	}
	err := srv.access.Save(models.AccessRecord{
		Time:        time.Now(),
		RemoteAddr:  conn.RemoteAddr().String(),
		Path:        path,
		Status:      status,
		Bytes:       int64(bytes),
		ContentType: contentType,
	})
	if err != nil {
		log.Errorf("Failed to record access from %s: %v", conn.RemoteAddr(), err)
	}
}
