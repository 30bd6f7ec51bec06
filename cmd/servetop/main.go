package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RobbyCBennett/Serve/internal/config"
	"github.com/RobbyCBennett/Serve/internal/tui"
)

func main() {
	accessLog := flag.String("access-log", config.AccessLogFile, "sqlite access log path")
	flag.Parse()

	db := config.GetDB(*accessLog)
	defer config.Close()

	if _, err := tui.GetTui(db).Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
