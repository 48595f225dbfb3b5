package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

func main() {
	var (
		historyPath = flag.String("history-path", "", "Path to the history file (defaults to a file under the user config dir)")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	// Resolve the platform-appropriate default history location
	if *historyPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("Failed to locate user config dir: %v", err)
		}
		*historyPath = filepath.Join(configDir, project.Name, "history.tsv")
	}

	// Convert to absolute path
	if absPath, err := filepath.Abs(*historyPath); err == nil {
		*historyPath = absPath
	}

	config := &types.Config{
		HistoryPath: *historyPath,
		LogLevel:    *logLevel,
	}

	// Create and start the server (this blocks until the server shuts down)
	calcServer := server.NewCalcServer(config)
	if err := calcServer.Serve(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
