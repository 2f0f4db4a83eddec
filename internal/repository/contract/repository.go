package contract

import (
	"context"

	"landing-cms-be/internal/repository/specification"
)

// CrudRepository is the uniform persistence surface shared by every table in
// the schema. Find methods return (nil, nil) when no row matches; Delete
// returns gorm.ErrRecordNotFound when the id does not exist so callers can
// distinguish "deleted" from "was never there".
type CrudRepository[M any] interface {
	Create(ctx context.Context, m *M) error
	CreateAll(ctx context.Context, ms []*M) error
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context, specs ...specification.Specification) error
	FindById(ctx context.Context, id uint) (*M, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*M, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*M, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

// FeaturedRepository adds content-entity preloading on top of plain CRUD for
// the five feature association tables.
type FeaturedRepository[M any] interface {
	CrudRepository[M]
	FindByIdWithContent(ctx context.Context, id uint) (*M, error)
	FindAllWithContent(ctx context.Context, specs ...specification.Specification) ([]*M, error)
}
