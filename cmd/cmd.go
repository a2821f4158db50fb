// Package cmd provides CLI commands for the Cimba support chatbot.
//
// Commands:
//   - serve: HTTP API server exposing chat, ingestion and health endpoints
//   - ingest: Seed the knowledge base with the built-in FAQ corpus
//
// Signal handling and graceful shutdown are implemented for all commands
// via context cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Kavishdk/Customer-support-chatbot/internal/log"
)

// Execute is the main entry point for the cimba CLI application.
func Execute() error {
	// Initialize logger once at entry point
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(log.New(log.Config{Level: level}))

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "ingest":
		return runIngest()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("Cimba - AI support assistant backend")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cimba serve [addr] Start HTTP API server (default: 127.0.0.1:5000)")
	fmt.Println("  cimba ingest       Seed the knowledge base with the FAQ corpus")
	fmt.Println("  cimba --version    Show version information")
	fmt.Println("  cimba --help       Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY     Required: Gemini API key")
	fmt.Println("  DATABASE_URL       Optional: PostgreSQL connection URL")
	fmt.Println("  DEBUG              Optional: Enable debug logging")
}
