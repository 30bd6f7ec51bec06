package config

import "time"

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8080

	// PreferredPublicDir is served when it exists as a directory; otherwise
	// files come from the current directory.
	PreferredPublicDir = "public"

	// DefaultMaxConnections caps the live connection set.
	DefaultMaxConnections = 16

	// ReadBufferSize is how much of a request is ever parsed; the rest is
	// drained into the trash buffer.
	ReadBufferSize = 256

	// DefaultPollInterval bounds every single accept or read wait in the
	// poll loop.
	DefaultPollInterval = 10 * time.Millisecond

	AccessLogFile = "access.db"
)
