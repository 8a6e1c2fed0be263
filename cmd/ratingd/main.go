package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	"github.com/courtrank/ratingengine/internal/config"
	"github.com/courtrank/ratingengine/internal/logger"
	migrate "github.com/courtrank/ratingengine/internal/migrate"
	"github.com/courtrank/ratingengine/internal/rules"
	"github.com/courtrank/ratingengine/internal/service"
	"github.com/courtrank/ratingengine/internal/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Debug)
	ruleCfg, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return err
	}
	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return err
	}
	err = migrate.Up(db)
	if err != nil {
		return err
	}
	store := sqlite.New(db, log)
	svc := service.New(store, store, ruleCfg, cfg.Iterations, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mode := "all"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	switch mode {
	case "singles":
		return svc.UpdateSinglesRatings(ctx)
	case "doubles":
		return svc.UpdateDoublesRatings(ctx)
	case "all":
		if err := svc.UpdateSinglesRatings(ctx); err != nil {
			return err
		}
		return svc.UpdateDoublesRatings(ctx)
	}
	return fmt.Errorf("unknown mode %q, want singles, doubles or all", mode)
}
