package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"felizeducation/internal/config"
	"felizeducation/internal/database"
	"felizeducation/internal/repository"
	"felizeducation/internal/service"
)

func main() {
	output := flag.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	flag.Usage = printUsage
	flag.Parse()

	cfg := config.Load()

	db, err := database.InitializeWithType(cfg.DatabaseType, cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	kv := database.NewSQLKV(db)
	backupService := service.NewBackupService(
		repository.NewUserRepository(kv),
		repository.NewTransactionRepository(kv),
	)

	path := *output
	if path == "" {
		path = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logrus.WithError(err).Fatal("failed to create output directory")
		}
	}

	logrus.WithField("path", path).Info("exporting profiles and transactions")
	if err := backupService.ExportToFile(path); err != nil {
		logrus.WithError(err).Fatal("export failed")
	}

	if info, err := os.Stat(path); err == nil {
		logrus.WithField("bytes", info.Size()).Info("export complete")
	}
}

func printUsage() {
	fmt.Println("Feliz Education backup tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup [-output <file>]")
	fmt.Println()
	fmt.Println("Exports every profile and the transaction ledger to a JSON file.")
	fmt.Println("Password hashes are never included.")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH    SQLite database path (default: ./feliz.db)")
	fmt.Println("  DB_URL     PostgreSQL or MySQL connection URL")
}
