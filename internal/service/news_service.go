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

type INewsService interface {
	GetAll(ctx context.Context) ([]*model.News, error)
	GetById(ctx context.Context, id uint) (*model.News, error)
	Create(ctx context.Context, req *dto.CreateNewsRequest) (*model.News, error)
	Update(ctx context.Context, id uint, req *dto.UpdateNewsRequest) (*model.News, error)
	Delete(ctx context.Context, id uint) error
}

type newsService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewNewsService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) INewsService {
	return &newsService{uowFactory: uowFactory, publisher: publisher}
}

func (s *newsService) GetAll(ctx context.Context) ([]*model.News, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NewsRepository().FindAll(ctx, specification.ByDisplayOrder{})
}

func (s *newsService) GetById(ctx context.Context, id uint) (*model.News, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.NewsRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("news item not found")
	}
	return m, nil
}

func (s *newsService) Create(ctx context.Context, req *dto.CreateNewsRequest) (*model.News, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m := &model.News{
		Title:        req.Title,
		LandingImage: req.LandingImage,
		Description:  req.Description,
		PublishedAt:  req.PublishedAt,
		Order:        req.Order,
	}
	if err := uow.NewsRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "News", m.Id, "created")
	}
	return m, nil
}

func (s *newsService) Update(ctx context.Context, id uint, req *dto.UpdateNewsRequest) (*model.News, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.NewsRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("news item not found")
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
	if req.PublishedAt != nil {
		m.PublishedAt = req.PublishedAt
	}
	if req.Order != nil {
		m.Order = *req.Order
	}

	if err := uow.NewsRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "News", m.Id, "updated")
	}
	return m, nil
}

func (s *newsService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.NewsRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("news item not found")
	}
	if err == nil && s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "News", id, "deleted")
	}
	return err
}
