// Package cli implements the blogsite subcommands: running the server and
// managing the Badger database underneath it.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"blogsite/app/config"

	"github.com/dgraph-io/badger/v4"
)

// HandleCommand dispatches a database or server subcommand.
func HandleCommand(cfg config.Config, args []string) {
	if len(args) < 1 {
		PrintHelp()
		os.Exit(1)
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		serve(cfg)
	case "init":
		initDB(cfg)
	case "clean":
		clean(cfg)
	case "backup":
		backup(cfg)
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(cfg, args[1])
	case "help":
		PrintHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		PrintHelp()
		os.Exit(1)
	}
}

// PrintHelp prints usage for all subcommands.
func PrintHelp() {
	helpText := `Usage: blogsite <command> [options]

Commands:
  serve                          Run the blog server
  init                           Initialize a new empty database
  clean                          Remove the database
  backup                         Create a backup of the database
  restore <file>                 Restore the database from a backup
  version                        Show version information
  help                           Display this help message

Configuration comes from the environment or a .env file:
  ADDR        listen address (default :8080)
  DB_PATH     Badger database directory (default data/badger)
  SECRET_KEY  session cookie signing key
`
	fmt.Println(helpText)
}

// initDB creates an empty database at the configured path.
func initDB(cfg config.Config) {
	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		slog.Error("failed to create database directory", "error", err)
		os.Exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database after an interactive confirmation.
func clean(cfg config.Config) {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DBPath); err != nil {
		slog.Error("failed to clean database", "error", err)
		os.Exit(1)
	}
	fmt.Println("Database cleaned successfully")
}

// backup streams the database into a timestamped file next to it.
func backup(cfg config.Config) {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := filepath.Join(filepath.Dir(cfg.DBPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		slog.Error("failed to create backup directory", "error", err)
		os.Exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		slog.Error("failed to create backup file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		slog.Error("failed to backup database", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore replaces the database with the contents of a backup file.
func restore(cfg config.Config, backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(cfg.DBPath); err != nil {
			slog.Error("failed to remove existing database", "error", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		slog.Error("failed to create database directory", "error", err)
		os.Exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DBPath))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		slog.Error("failed to open backup file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		slog.Error("failed to restore database", "error", err)
		os.Exit(1)
	}

	fmt.Println("Database restored successfully")
}
