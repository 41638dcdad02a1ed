package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/archlab/patterns/infra/database"
	infrarepo "github.com/archlab/patterns/infra/repository"
	"github.com/archlab/patterns/pkg/config"
	chatsvc "github.com/archlab/patterns/pkg/service/chat"
	"github.com/archlab/patterns/webapi/chat"
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

	db, err := database.Open(cfg.Chat.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database %q: %w", cfg.Chat.DBPath, err)
	}
	if err := infrarepo.MigrateChat(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	svc := chatsvc.NewService(infrarepo.NewConversationRepository(db), logger)

	app := chat.NewApp(svc)
	logger.Info("starting chat service", "addr", cfg.Chat.Addr, "db", cfg.Chat.DBPath)
	return app.Listen(cfg.Chat.Addr)
}
