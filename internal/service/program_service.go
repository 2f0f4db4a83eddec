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

type IProgramService interface {
	GetAll(ctx context.Context) ([]*model.Program, error)
	GetById(ctx context.Context, id uint) (*model.Program, error)
	Create(ctx context.Context, req *dto.CreateProgramRequest) (*model.Program, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProgramRequest) (*model.Program, error)
	Delete(ctx context.Context, id uint) error
}

type programService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewProgramService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IProgramService {
	return &programService{uowFactory: uowFactory, publisher: publisher}
}

// Direct listings sort by the entity's own display_order, which is a
// different axis from any featured placement of the same program.
func (s *programService) GetAll(ctx context.Context) ([]*model.Program, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProgramRepository().FindAll(ctx, specification.ByDisplayOrder{})
}

func (s *programService) GetById(ctx context.Context, id uint) (*model.Program, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.ProgramRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("program not found")
	}
	return m, nil
}

func (s *programService) Create(ctx context.Context, req *dto.CreateProgramRequest) (*model.Program, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m := &model.Program{
		Title:        req.Title,
		LandingImage: req.LandingImage,
		Description:  req.Description,
		Order:        req.Order,
	}
	if err := uow.ProgramRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Program", m.Id, "created")
	}
	return m, nil
}

func (s *programService) Update(ctx context.Context, id uint, req *dto.UpdateProgramRequest) (*model.Program, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.ProgramRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("program not found")
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

	if err := uow.ProgramRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Program", m.Id, "updated")
	}
	return m, nil
}

func (s *programService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.ProgramRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("program not found")
	}
	if err == nil && s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Program", id, "deleted")
	}
	return err
}
