package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Ranker/internal/scoring"
)

// Calculation is one completed SAW run, kept so results can be fetched
// again after the request that produced them.
type Calculation struct {
	ID         uuid.UUID           `json:"calculation_id"`
	Criteria   []scoring.Criterion `json:"criteria"`
	Evaluation *scoring.Evaluation `json:"evaluation"`
	Summary    scoring.Summary     `json:"summary"`
	Frontier   []string            `json:"pareto_frontier,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

type Store interface {
	// SaveCalculation assigns ID and CreatedAt when they are zero.
	SaveCalculation(ctx context.Context, c *Calculation) error
	// GetCalculation returns nil, nil when id is unknown.
	GetCalculation(ctx context.Context, id uuid.UUID) (*Calculation, error)
	// ListCalculations returns newest first. limit <= 0 means all.
	ListCalculations(ctx context.Context, limit int) ([]*Calculation, error)
	Close() error
}
