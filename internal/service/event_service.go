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

type IEventService interface {
	GetAll(ctx context.Context) ([]*model.Event, error)
	GetById(ctx context.Context, id uint) (*model.Event, error)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewEventService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IEventService {
	return &eventService{uowFactory: uowFactory, publisher: publisher}
}

func (s *eventService) GetAll(ctx context.Context) ([]*model.Event, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EventRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *eventService) GetById(ctx context.Context, id uint) (*model.Event, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.EventRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("event not found")
	}
	return m, nil
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*model.Event, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m := &model.Event{
		Title:        req.Title,
		LandingImage: req.LandingImage,
		Description:  req.Description,
		Date:         req.Date,
	}
	if err := uow.EventRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Event", m.Id, "created")
	}
	return m, nil
}

func (s *eventService) Update(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*model.Event, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.EventRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("event not found")
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
	if req.Date != nil {
		m.Date = req.Date
	}

	if err := uow.EventRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Event", m.Id, "updated")
	}
	return m, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.EventRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("event not found")
	}
	if err == nil && s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Event", id, "deleted")
	}
	return err
}
