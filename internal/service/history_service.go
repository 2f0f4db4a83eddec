package service

import (
	"context"
	"errors"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/repository/specification"
	"landing-cms-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

type IHistoryAndValuesService interface {
	GetAll(ctx context.Context) ([]*model.HistoryAndValues, error)
	GetById(ctx context.Context, id uint) (*model.HistoryAndValues, error)
	Create(ctx context.Context, req *dto.CreateHistoryAndValuesRequest) (*model.HistoryAndValues, error)
	Update(ctx context.Context, id uint, req *dto.UpdateHistoryAndValuesRequest) (*model.HistoryAndValues, error)
	Delete(ctx context.Context, id uint) error
}

type historyAndValuesService struct {
	uowFactory unitofwork.RepositoryFactory
	landing    ILandingService
	publisher  IPublisherService
}

func NewHistoryAndValuesService(uowFactory unitofwork.RepositoryFactory, landing ILandingService, publisher IPublisherService) IHistoryAndValuesService {
	return &historyAndValuesService{uowFactory: uowFactory, landing: landing, publisher: publisher}
}

func (s *historyAndValuesService) GetAll(ctx context.Context) ([]*model.HistoryAndValues, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.HistoryAndValuesRepository().FindAll(ctx, specification.ByDisplayOrder{})
}

func (s *historyAndValuesService) GetById(ctx context.Context, id uint) (*model.HistoryAndValues, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.HistoryAndValuesRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("history and values item not found")
	}
	return m, nil
}

// Create binds the row to the current landing page via the provisioner when
// no landingPageId is supplied; a supplied id must resolve.
func (s *historyAndValuesService) Create(ctx context.Context, req *dto.CreateHistoryAndValuesRequest) (*model.HistoryAndValues, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pageId := req.LandingPageId
	if pageId == nil {
		lp, err := s.landing.EnsureLandingPage(ctx)
		if err != nil {
			return nil, err
		}
		pageId = &lp.Id
	} else {
		lp, err := uow.LandingPageRepository().FindById(ctx, *pageId)
		if err != nil {
			return nil, err
		}
		if lp == nil {
			return nil, serverutils.NewReferentialError("LandingPage")
		}
	}

	m := &model.HistoryAndValues{
		LandingPageId: pageId,
		Title:         req.Title,
		LandingImage:  req.LandingImage,
		Description:   req.Description,
		Order:         req.Order,
	}
	if err := uow.HistoryAndValuesRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "HistoryAndValues", m.Id, "created")
	}
	return m, nil
}

func (s *historyAndValuesService) Update(ctx context.Context, id uint, req *dto.UpdateHistoryAndValuesRequest) (*model.HistoryAndValues, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.HistoryAndValuesRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("history and values item not found")
	}

	if req.LandingPageId != nil {
		lp, err := uow.LandingPageRepository().FindById(ctx, *req.LandingPageId)
		if err != nil {
			return nil, err
		}
		if lp == nil {
			return nil, serverutils.NewReferentialError("LandingPage")
		}
		m.LandingPageId = req.LandingPageId
	}
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.LandingImage != nil {
		m.LandingImage = *req.LandingImage
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Order != nil {
		m.Order = *req.Order
	}

	if err := uow.HistoryAndValuesRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "HistoryAndValues", m.Id, "updated")
	}
	return m, nil
}

func (s *historyAndValuesService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.HistoryAndValuesRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("history and values item not found")
	}
	if err == nil && s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "HistoryAndValues", id, "deleted")
	}
	return err
}
