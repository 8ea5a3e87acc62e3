package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-patterns/pkg/config"
	"github.com/sunfmin/mcp-go-patterns/pkg/logger"
	"github.com/sunfmin/mcp-go-patterns/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)

	version := Version
	if version == "dev" && cfg.Server.Version != "" {
		version = cfg.Server.Version
	}

	logger.Info("Starting MCP Go Patterns", "name", cfg.Server.Name, "version", version)

	patternServer := mcp.NewMCPPatternServer(cfg.Server.Name, version)

	// Start the stdio server
	if err := server.ServeStdio(patternServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
