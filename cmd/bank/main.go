package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/archlab/patterns/infra/database"
	infraeventbus "github.com/archlab/patterns/infra/eventbus"
	infrarepo "github.com/archlab/patterns/infra/repository"
	"github.com/archlab/patterns/pkg/config"
	"github.com/archlab/patterns/pkg/projection"
	banksvc "github.com/archlab/patterns/pkg/service/bank"
	"github.com/archlab/patterns/webapi/bank"
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

	db, err := database.Open(cfg.Bank.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database %q: %w", cfg.Bank.DBPath, err)
	}
	if err := infrarepo.MigrateBank(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	bus := infraeventbus.NewMemory(logger)
	projections := infrarepo.NewBalanceProjectionRepository(db)
	bus.Subscribe(projection.NewBalanceProjector(projections, logger).Handle)

	svc := banksvc.NewService(
		infrarepo.NewBankUoW(db),
		infrarepo.NewAccountRepository(db),
		projections,
		bus,
		logger,
	)

	app := bank.NewApp(svc)
	logger.Info("starting bank service", "addr", cfg.Bank.Addr, "db", cfg.Bank.DBPath)
	return app.Listen(cfg.Bank.Addr)
}
