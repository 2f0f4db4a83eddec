package implementation

import (
	"context"
	"errors"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StartupRepositoryImpl struct {
	CrudRepositoryImpl[model.Startup]
}

func NewStartupRepository(db *gorm.DB) contract.StartupRepository {
	return &StartupRepositoryImpl{CrudRepositoryImpl: CrudRepositoryImpl[model.Startup]{db: db}}
}

func (r *StartupRepositoryImpl) FindByIdWithFounders(ctx context.Context, id uint) (*model.Startup, error) {
	var m model.Startup
	err := r.db.WithContext(ctx).Preload("Founders.User").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *StartupRepositoryImpl) FindAllWithFounders(ctx context.Context, specs ...specification.Specification) ([]*model.Startup, error) {
	var models []*model.Startup
	query := applySpecifications(r.db.WithContext(ctx).Preload("Founders.User"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}
