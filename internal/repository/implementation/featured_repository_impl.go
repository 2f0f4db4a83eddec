package implementation

import (
	"context"
	"errors"

	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FeaturedRepositoryImpl[M any] struct {
	CrudRepositoryImpl[M]
	preload string
}

// NewFeaturedRepository builds a repository for one feature association
// table; preload is the GORM relation name of the inlined content entity
// ("Event", "Program", ...).
func NewFeaturedRepository[M any](db *gorm.DB, preload string) contract.FeaturedRepository[M] {
	return &FeaturedRepositoryImpl[M]{
		CrudRepositoryImpl: CrudRepositoryImpl[M]{db: db},
		preload:            preload,
	}
}

func (r *FeaturedRepositoryImpl[M]) FindByIdWithContent(ctx context.Context, id uint) (*M, error) {
	var m M
	query := r.db.WithContext(ctx).Preload(r.preload)
	if err := query.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *FeaturedRepositoryImpl[M]) FindAllWithContent(ctx context.Context, specs ...specification.Specification) ([]*M, error) {
	var models []*M
	query := applySpecifications(r.db.WithContext(ctx).Preload(r.preload), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}
