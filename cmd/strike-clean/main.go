package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/strike-clean/internal/config"
	"github.com/ironsheep/strike-clean/internal/runner"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("strike-clean %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("strike-clean - strikethrough removal for scanned text images")
			fmt.Println()
			fmt.Println("Usage: strike-clean [options]            process base64 image from stdin")
			fmt.Println("       strike-clean selfcheck [options]  probe the processing environment")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -config path     YAML file overriding the pipeline parameters")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  STRIKE_CLEAN_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("The tool reads one base64-encoded image as the entire stdin stream and")
			fmt.Println("writes a single JSON result to stdout. Logs go to stderr.")
			return
		}
	}

	// Configure logging to stderr (stdout is reserved for the JSON envelope)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	args := os.Args[1:]
	selfcheck := false
	if len(args) > 0 && args[0] == "selfcheck" {
		selfcheck = true
		args = args[1:]
	}

	fs := flag.NewFlagSet("strike-clean", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML parameter file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	params := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		params = loaded
	}

	if os.Getenv("STRIKE_CLEAN_LOG_LEVEL") == "debug" {
		log.Printf("strike-clean v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if selfcheck {
		// The probe always exits 0; its verdict lives in the JSON payload
		if err := json.NewEncoder(os.Stdout).Encode(runner.SelfCheck(params)); err != nil {
			log.Fatalf("Failed to emit selfcheck result: %v", err)
		}
		return
	}

	os.Exit(runner.Run(os.Stdin, os.Stdout, params))
}
