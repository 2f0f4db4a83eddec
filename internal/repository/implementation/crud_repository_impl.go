package implementation

import (
	"context"
	"errors"

	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CrudRepositoryImpl[M any] struct {
	db *gorm.DB
}

func NewCrudRepository[M any](db *gorm.DB) contract.CrudRepository[M] {
	return &CrudRepositoryImpl[M]{db: db}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CrudRepositoryImpl[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CrudRepositoryImpl[M]) CreateAll(ctx context.Context, ms []*M) error {
	if len(ms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(ms).Error
}

func (r *CrudRepositoryImpl[M]) Update(ctx context.Context, m *M) error {
	// Save updates all fields including zero values when the primary key is set.
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CrudRepositoryImpl[M]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CrudRepositoryImpl[M]) DeleteAll(ctx context.Context, specs ...specification.Specification) error {
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	return query.Delete(new(M)).Error
}

func (r *CrudRepositoryImpl[M]) FindById(ctx context.Context, id uint) (*M, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *CrudRepositoryImpl[M]) FindOne(ctx context.Context, specs ...specification.Specification) (*M, error) {
	var m M
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *CrudRepositoryImpl[M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*M, error) {
	var models []*M
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *CrudRepositoryImpl[M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
