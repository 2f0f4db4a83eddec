package unitofwork

import (
	"context"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one logical database session.
// Between Begin and Commit/Rollback every repository runs on the same
// transaction; the synchronization engine relies on that for its
// all-or-nothing envelope replace.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LandingPageRepository() contract.LandingPageRepository

	HeroSectionRepository() contract.CrudRepository[model.HeroSection]
	PartnerRepository() contract.CrudRepository[model.Partner]
	FooterRepository() contract.CrudRepository[model.Footer]
	FaqRepository() contract.CrudRepository[model.Faq]
	VisionAndMissionRepository() contract.CrudRepository[model.VisionAndMission]

	EventRepository() contract.CrudRepository[model.Event]
	ProgramRepository() contract.CrudRepository[model.Program]
	NewsRepository() contract.CrudRepository[model.News]
	HistoryAndValuesRepository() contract.CrudRepository[model.HistoryAndValues]
	StartupRepository() contract.StartupRepository
	StartupFounderRepository() contract.CrudRepository[model.StartupFounder]

	FeaturedEventRepository() contract.FeaturedRepository[model.FeaturedEvent]
	FeaturedProgramRepository() contract.FeaturedRepository[model.FeaturedProgram]
	FeaturedNewsRepository() contract.FeaturedRepository[model.FeaturedNews]
	FeaturedHistoryAndValuesRepository() contract.FeaturedRepository[model.FeaturedHistoryAndValues]
	FeaturedStartupRepository() contract.FeaturedRepository[model.FeaturedStartup]

	UserRepository() contract.CrudRepository[model.User]
	SystemLogRepository() contract.CrudRepository[model.SystemLog]
}
