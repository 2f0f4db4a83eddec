package contract

import (
	"context"

	"landing-cms-be/internal/model"
)

// LandingPageRepository anchors the aggregate root. Current returns the
// lowest-id row (nil if none exist); Provision inserts the singleton row with
// an on-conflict-do-nothing clause so concurrent callers converge on one row.
type LandingPageRepository interface {
	Create(ctx context.Context, lp *model.LandingPage) error
	Current(ctx context.Context) (*model.LandingPage, error)
	FindById(ctx context.Context, id uint) (*model.LandingPage, error)
	Provision(ctx context.Context) (*model.LandingPage, error)
	Count(ctx context.Context) (int64, error)
}
