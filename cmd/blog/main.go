package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/archlab/patterns/infra/database"
	infrarepo "github.com/archlab/patterns/infra/repository"
	"github.com/archlab/patterns/pkg/config"
	"github.com/archlab/patterns/webapi/blog"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Blog.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database %q: %w", cfg.Blog.DBPath, err)
	}
	if err := infrarepo.MigrateBlog(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	app := blog.NewApp(infrarepo.NewPostRepository(db))
	logger.Info("starting blog service", "addr", cfg.Blog.Addr, "db", cfg.Blog.DBPath)
	return app.Listen(cfg.Blog.Addr)
}
