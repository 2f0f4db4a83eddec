package unitofwork

import (
	"context"
	"fmt"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) LandingPageRepository() contract.LandingPageRepository {
	return implementation.NewLandingPageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HeroSectionRepository() contract.CrudRepository[model.HeroSection] {
	return implementation.NewCrudRepository[model.HeroSection](u.getDB())
}

func (u *UnitOfWorkImpl) PartnerRepository() contract.CrudRepository[model.Partner] {
	return implementation.NewCrudRepository[model.Partner](u.getDB())
}

func (u *UnitOfWorkImpl) FooterRepository() contract.CrudRepository[model.Footer] {
	return implementation.NewCrudRepository[model.Footer](u.getDB())
}

func (u *UnitOfWorkImpl) FaqRepository() contract.CrudRepository[model.Faq] {
	return implementation.NewCrudRepository[model.Faq](u.getDB())
}

func (u *UnitOfWorkImpl) VisionAndMissionRepository() contract.CrudRepository[model.VisionAndMission] {
	return implementation.NewCrudRepository[model.VisionAndMission](u.getDB())
}

func (u *UnitOfWorkImpl) EventRepository() contract.CrudRepository[model.Event] {
	return implementation.NewCrudRepository[model.Event](u.getDB())
}

func (u *UnitOfWorkImpl) ProgramRepository() contract.CrudRepository[model.Program] {
	return implementation.NewCrudRepository[model.Program](u.getDB())
}

func (u *UnitOfWorkImpl) NewsRepository() contract.CrudRepository[model.News] {
	return implementation.NewCrudRepository[model.News](u.getDB())
}

func (u *UnitOfWorkImpl) HistoryAndValuesRepository() contract.CrudRepository[model.HistoryAndValues] {
	return implementation.NewCrudRepository[model.HistoryAndValues](u.getDB())
}

func (u *UnitOfWorkImpl) StartupRepository() contract.StartupRepository {
	return implementation.NewStartupRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StartupFounderRepository() contract.CrudRepository[model.StartupFounder] {
	return implementation.NewCrudRepository[model.StartupFounder](u.getDB())
}

func (u *UnitOfWorkImpl) FeaturedEventRepository() contract.FeaturedRepository[model.FeaturedEvent] {
	return implementation.NewFeaturedRepository[model.FeaturedEvent](u.getDB(), "Event")
}

func (u *UnitOfWorkImpl) FeaturedProgramRepository() contract.FeaturedRepository[model.FeaturedProgram] {
	return implementation.NewFeaturedRepository[model.FeaturedProgram](u.getDB(), "Program")
}

func (u *UnitOfWorkImpl) FeaturedNewsRepository() contract.FeaturedRepository[model.FeaturedNews] {
	return implementation.NewFeaturedRepository[model.FeaturedNews](u.getDB(), "News")
}

func (u *UnitOfWorkImpl) FeaturedHistoryAndValuesRepository() contract.FeaturedRepository[model.FeaturedHistoryAndValues] {
	return implementation.NewFeaturedRepository[model.FeaturedHistoryAndValues](u.getDB(), "HistoryAndValues")
}

func (u *UnitOfWorkImpl) FeaturedStartupRepository() contract.FeaturedRepository[model.FeaturedStartup] {
	return implementation.NewFeaturedRepository[model.FeaturedStartup](u.getDB(), "Startup")
}

func (u *UnitOfWorkImpl) UserRepository() contract.CrudRepository[model.User] {
	return implementation.NewCrudRepository[model.User](u.getDB())
}

func (u *UnitOfWorkImpl) SystemLogRepository() contract.CrudRepository[model.SystemLog] {
	return implementation.NewCrudRepository[model.SystemLog](u.getDB())
}
