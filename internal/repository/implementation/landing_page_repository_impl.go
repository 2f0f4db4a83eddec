package implementation

import (
	"context"
	"errors"
	"fmt"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LandingPageRepositoryImpl struct {
	db *gorm.DB
}

func NewLandingPageRepository(db *gorm.DB) contract.LandingPageRepository {
	return &LandingPageRepositoryImpl{db: db}
}

func (r *LandingPageRepositoryImpl) Create(ctx context.Context, lp *model.LandingPage) error {
	if lp.Slot == 0 {
		lp.Slot = 1
	}
	return r.db.WithContext(ctx).Create(lp).Error
}

func (r *LandingPageRepositoryImpl) Current(ctx context.Context) (*model.LandingPage, error) {
	var lp model.LandingPage
	err := r.db.WithContext(ctx).Order("id ASC").First(&lp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lp, nil
}

func (r *LandingPageRepositoryImpl) FindById(ctx context.Context, id uint) (*model.LandingPage, error) {
	var lp model.LandingPage
	err := r.db.WithContext(ctx).First(&lp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lp, nil
}

// Provision guarantees the singleton row exists. The insert is keyed on the
// unique slot column with DO NOTHING, so two concurrent provisions cannot
// both create a row; the loser of the race just reads the winner's row back.
func (r *LandingPageRepositoryImpl) Provision(ctx context.Context) (*model.LandingPage, error) {
	lp := model.LandingPage{Slot: 1}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoNothing: true,
		}).
		Create(&lp).Error
	if err != nil {
		return nil, fmt.Errorf("provision landing page: %w", err)
	}

	current, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("provision landing page: row missing after upsert")
	}
	return current, nil
}

func (r *LandingPageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.LandingPage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
