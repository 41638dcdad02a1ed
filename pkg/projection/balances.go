// Package projection keeps the denormalized read models in step with the
// write models by consuming events from the bus.
package projection

import (
	"context"
	"log/slog"

	"github.com/archlab/patterns/pkg/domain/bank"
	"github.com/archlab/patterns/pkg/eventbus"
	"github.com/archlab/patterns/pkg/repository"
)

// BalanceProjector upserts the balances read model on every AccountChanged
// event. It runs synchronously inside Publish, so the projection is up to
// date by the time the mutating call returns.
type BalanceProjector struct {
	projections repository.BalanceProjectionRepository
	logger      *slog.Logger
}

// NewBalanceProjector creates a projector writing through projections.
func NewBalanceProjector(projections repository.BalanceProjectionRepository, logger *slog.Logger) *BalanceProjector {
	return &BalanceProjector{
		projections: projections,
		logger:      logger.With("projection", "balances"),
	}
}

// Handle is the bus subscriber. Events other than AccountChanged are
// ignored; upsert failures are returned for the bus to report.
func (p *BalanceProjector) Handle(ctx context.Context, event eventbus.Event) error {
	changed, ok := event.(bank.AccountChanged)
	if !ok {
		return nil
	}
	p.logger.Debug("projecting balance",
		"account_id", changed.AccountID, "balance", changed.Balance)
	return p.projections.Upsert(ctx, changed.AccountID, changed.Balance)
}
