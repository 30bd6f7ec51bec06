// Package server implements a minimal HTTP/1.1 static file server on a raw
// TCP listener. A single goroutine multiplexes a bounded set of connections
// with short socket deadlines standing in for non-blocking sockets: every
// operation either completes quickly or returns a timeout, and the loop
// polls all live connections once per pass. Each connection gets exactly one
// request/response cycle and is then dropped; there is no keep-alive, and a
// peer that never sends a full request holds its slot until it closes.
package server

import (
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/RobbyCBennett/Serve/internal/config"
	"github.com/RobbyCBennett/Serve/internal/repository"
)

type Config struct {
	Host      string // address to bind
	Port      int    // TCP port to bind, 0 picks an ephemeral port
	PublicDir string // directory whose files are exposed

	MaxConnections int           // capacity of the live connection set
	ReadBufferSize int           // bytes of a request that are ever parsed
	PollInterval   time.Duration // upper bound on any single accept or read wait
}

type Server struct {
	Config

	listener *net.TCPListener
	running  atomic.Bool

	// conns is the live connection set. The two buffers are shared by every
	// connection, so memory stays flat no matter how busy the server is.
	conns    []net.Conn
	readBuf  []byte
	trashBuf []byte

	access repository.AccessRepository
}

// New prepares a server. A nil access repository disables request logging.
func New(cfg Config, access repository.AccessRepository) *Server {
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = config.DefaultMaxConnections
	}
	if cfg.ReadBufferSize <= len(methodPrefix) {
		cfg.ReadBufferSize = config.ReadBufferSize
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = config.DefaultPollInterval
	}

	srv := &Server{
		Config:   cfg,
		conns:    make([]net.Conn, 0, cfg.MaxConnections),
		readBuf:  make([]byte, cfg.ReadBufferSize),
		trashBuf: make([]byte, cfg.ReadBufferSize),
		access:   access,
	}
	srv.running.Store(true)
	return srv
}

// Listen binds the TCP listener. Binding failure is the only error the
// serving path ever returns; everything later is handled per connection.
func (srv *Server) Listen() error {
	addr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("%s:%d", srv.Host, srv.Port))
	if err != nil {
		return fmt.Errorf("resolve %s:%d: %w", srv.Host, srv.Port, err)
	}
	listener, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s:%d: %w", srv.Host, srv.Port, err)
	}
	srv.listener = listener
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (srv *Server) Addr() net.Addr {
	if srv.listener == nil {
		return nil
	}
	return srv.listener.Addr()
}

// Shutdown asks the poll loop to stop. It is safe to call from a signal
// handler goroutine; the loop observes the flag on its next pass and the
// drain loop checks it once per iteration.
func (srv *Server) Shutdown() {
	srv.running.Store(false)
}

// Run accepts and serves connections until Shutdown. Live connections are
// closed on return without being drained further.
func (srv *Server) Run() error {
	if srv.listener == nil {
		if err := srv.Listen(); err != nil {
			return err
		}
	}
	defer srv.listener.Close()
	defer srv.closeAll()

	log.Infof("Listening on %s, serving %s", srv.listener.Addr(), srv.PublicDir)

	for srv.running.Load() {
		srv.listener.SetDeadline(time.Now().Add(srv.PollInterval))
		conn, err := srv.listener.Accept()
		switch {
		case err == nil && len(srv.conns) < srv.MaxConnections:
			log.Debugf("Accepted connection from %s", conn.RemoteAddr())
			srv.conns = append(srv.conns, conn)
		case err == nil:
			// Live set is full; shed the newcomer.
			log.Debugf("Rejecting %s, connection set is full", conn.RemoteAddr())
			conn.Close()
		case !isTimeout(err):
			log.Debugf("Accept failed: %v", err)
		}

		// One cycle per live connection, keeping only the ones still waiting
		// for data. The slice is compacted in place.
		kept := srv.conns[:0]
		for _, conn := range srv.conns {
			if srv.serveConn(conn) {
				kept = append(kept, conn)
			} else {
				log.Debugf("Dropping connection from %s", conn.RemoteAddr())
				conn.Close()
			}
		}
		for i := len(kept); i < len(srv.conns); i++ {
			srv.conns[i] = nil
		}
		srv.conns = kept
	}
	return nil
}

func (srv *Server) closeAll() {
	for _, conn := range srv.conns {
		conn.Close()
	}
	srv.conns = srv.conns[:0]
}

// isTimeout reports whether err is the would-block indication of a socket
// deadline expiring.
func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
