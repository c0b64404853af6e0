package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"blogsite/app/config"
	"blogsite/cli"
)

// CliVersion is the version reported by the version command.
const CliVersion = "1.0.0"

// exit is swapped out by tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the top-level command.
func RealMain() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogsite version %s\n", CliVersion)
	case "serve", "init", "clean", "backup", "restore":
		cli.HandleCommand(config.Load(), os.Args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	cli.PrintHelp()
}
