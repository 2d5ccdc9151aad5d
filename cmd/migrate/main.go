package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mimapa/config"
	logs "mimapa/internal/infra/log"
	"mimapa/internal/infra/persistence/migrations"

	"github.com/joho/godotenv"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|list")
	version := flag.String("version", "", "target version for -cmd=version")
	flag.Parse()

	// Commands that do NOT require DB
	if *cmd == "list" {
		versions, err := migrations.Versions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to list migrations: %v\n", err)
			os.Exit(1)
		}
		for _, v := range versions {
			fmt.Println(v)
		}

		return
	}

	cfg, err := config.New()
	requireResource(slog.Default(), "config", err)

	logger, err := logs.New(logs.Params{Config: cfg})
	requireResource(slog.Default(), "logger", err)
	logger = logger.With(slog.String("cmd", *cmd))

	db, err := pgLib.New(cfg.Postgres)
	requireResource(logger, "database", err)

	sqlDB, err := db.DB()
	requireResource(logger, "sql database", err)
	defer sqlDB.Close()

	ctx := context.Background()
	logger.Info("migrate ready")

	switch *cmd {
	case "up", "down", "status":
		err = migrations.Run(ctx, sqlDB, *cmd)
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		err = migrations.MigrateToVersion(ctx, sqlDB, *version)
	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("migration finished")
}

func requireResource(logger *slog.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logger.Error("resource not working", slog.String("resource", resource), slog.Any("error", err))
	os.Exit(1)
}
