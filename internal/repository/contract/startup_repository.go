package contract

import (
	"context"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/repository/specification"
)

// StartupRepository extends CRUD with founder preloading; the founder rule
// needs the referenced users in hand when a startup is read back.
type StartupRepository interface {
	CrudRepository[model.Startup]
	FindByIdWithFounders(ctx context.Context, id uint) (*model.Startup, error)
	FindAllWithFounders(ctx context.Context, specs ...specification.Specification) ([]*model.Startup, error)
}
