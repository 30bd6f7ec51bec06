package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/RobbyCBennett/Serve/internal/config"
	"github.com/RobbyCBennett/Serve/internal/repository"
	"github.com/RobbyCBennett/Serve/internal/server"
)

func main() {
	host := flag.String("host", config.DefaultHost, "address to listen on")
	port := flag.Int("port", config.DefaultPort, "TCP port to listen on")
	dir := flag.String("dir", "", `directory to serve (default "public" if it exists, else ".")`)
	accessLog := flag.String("access-log", config.AccessLogFile, "sqlite access log path (empty disables logging)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	publicDir := *dir
	if publicDir == "" {
		publicDir = pickPublicDir()
	}

	var access repository.AccessRepository
	if *accessLog != "" {
		access = config.GetDB(*accessLog)
		defer config.Close()
	}

	srv := server.New(server.Config{
		Host:           *host,
		Port:           *port,
		PublicDir:      publicDir,
		MaxConnections: config.DefaultMaxConnections,
		ReadBufferSize: config.ReadBufferSize,
	}, access)

	// A SIGINT flips the running flag; the poll loop finishes its current
	// pass and returns.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		log.Info("Interrupt received, shutting down")
		srv.Shutdown()
	}()

	fmt.Printf("http://%s:%d\n", *host, *port)
	fmt.Printf("Serving files: %s\n", publicDir)

	if err := srv.Run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// pickPublicDir serves the conventional "public" directory when it exists,
// falling back to the current directory.
func pickPublicDir() string {
	if info, err := os.Stat(config.PreferredPublicDir); err == nil && info.IsDir() {
		return config.PreferredPublicDir
	}
	return "."
}
