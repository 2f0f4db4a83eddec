package service

import (
	"context"
	"errors"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/specification"
	"landing-cms-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

// IFeaturedService is the uniform contract of the feature association
// manager, instantiated once per family (events, programs, news, history,
// startups).
type IFeaturedService[M any] interface {
	GetAll(ctx context.Context) ([]*M, error)
	GetById(ctx context.Context, id uint) (*M, error)
	Create(ctx context.Context, landingPageId, contentId *uint, order *int) (*M, error)
	Update(ctx context.Context, id uint, landingPageId, contentId *uint, order *int) (*M, error)
	Delete(ctx context.Context, id uint) error
}

type featuredService[M any, PM model.FeaturedPtr[M]] struct {
	uowFactory unitofwork.RepositoryFactory
	entityName string
	repo       func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[M]
	contentOk  func(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (bool, error)
	publisher  IPublisherService
}

func NewFeaturedService[M any, PM model.FeaturedPtr[M]](
	uowFactory unitofwork.RepositoryFactory,
	entityName string,
	repo func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[M],
	contentOk func(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (bool, error),
	publisher IPublisherService,
) IFeaturedService[M] {
	return &featuredService[M, PM]{
		uowFactory: uowFactory,
		entityName: entityName,
		repo:       repo,
		contentOk:  contentOk,
		publisher:  publisher,
	}
}

func (s *featuredService[M, PM]) GetAll(ctx context.Context) ([]*M, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.repo(uow).FindAllWithContent(ctx, specification.ByDisplayOrder{})
}

func (s *featuredService[M, PM]) GetById(ctx context.Context, id uint) (*M, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := s.repo(uow).FindByIdWithContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("featured %s not found", s.entityName)
	}
	return m, nil
}

// Create validates both references before anything is written, so a failure
// never leaves partial state. Order defaults to 0 when omitted.
func (s *featuredService[M, PM]) Create(ctx context.Context, landingPageId, contentId *uint, order *int) (*M, error) {
	if landingPageId == nil {
		return nil, serverutils.NewValidationError("landingPageId is required")
	}
	if contentId == nil {
		return nil, serverutils.NewValidationError("%s reference is required", s.entityName)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.validateRefs(ctx, uow, landingPageId, contentId); err != nil {
		return nil, err
	}

	m := PM(new(M))
	m.SetPage(*landingPageId)
	m.SetTarget(*contentId)
	if order != nil {
		m.SetDisplayOrder(*order)
	}

	if err := s.repo(uow).Create(ctx, (*M)(m)); err != nil {
		return nil, err
	}
	return s.repo(uow).FindByIdWithContent(ctx, m.AssociationId())
}

// Update applies a partial change; re-ranking via order alone is the common
// case. Any supplied reference is re-validated before the write.
func (s *featuredService[M, PM]) Update(ctx context.Context, id uint, landingPageId, contentId *uint, order *int) (*M, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := s.repo(uow).FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, serverutils.NewNotFoundError("featured %s not found", s.entityName)
	}

	if err := s.validateRefs(ctx, uow, landingPageId, contentId); err != nil {
		return nil, err
	}

	m := PM(existing)
	if landingPageId != nil {
		m.SetPage(*landingPageId)
	}
	if contentId != nil {
		m.SetTarget(*contentId)
	}
	if order != nil {
		m.SetDisplayOrder(*order)
	}

	if err := s.repo(uow).Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo(uow).FindByIdWithContent(ctx, id)
}

// Delete removes only the association row, never the referenced content.
// Deleting an id that does not exist is a 404, not a silent no-op.
func (s *featuredService[M, PM]) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := s.repo(uow).Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("featured %s not found", s.entityName)
	}
	return err
}

func (s *featuredService[M, PM]) validateRefs(ctx context.Context, uow unitofwork.UnitOfWork, landingPageId, contentId *uint) error {
	if landingPageId != nil {
		lp, err := uow.LandingPageRepository().FindById(ctx, *landingPageId)
		if err != nil {
			return err
		}
		if lp == nil {
			return serverutils.NewReferentialError("LandingPage")
		}
	}
	if contentId != nil {
		ok, err := s.contentOk(ctx, uow, *contentId)
		if err != nil {
			return err
		}
		if !ok {
			return serverutils.NewReferentialError(s.entityName)
		}
	}
	return nil
}
