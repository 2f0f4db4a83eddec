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

type IStartupService interface {
	GetAll(ctx context.Context) ([]*model.Startup, error)
	GetById(ctx context.Context, id uint) (*model.Startup, error)
	Create(ctx context.Context, req *dto.CreateStartupRequest) (*model.Startup, error)
	Update(ctx context.Context, id uint, req *dto.UpdateStartupRequest) (*model.Startup, error)
	Delete(ctx context.Context, id uint) error
}

type startupService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewStartupService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IStartupService {
	return &startupService{uowFactory: uowFactory, publisher: publisher}
}

func (s *startupService) GetAll(ctx context.Context) ([]*model.Startup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.StartupRepository().FindAllWithFounders(ctx, specification.ByDisplayOrder{})
}

func (s *startupService) GetById(ctx context.Context, id uint) (*model.Startup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.StartupRepository().FindByIdWithFounders(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("startup not found")
	}
	return m, nil
}

// Create does not enforce the founder rule; it is checked on update only,
// matching the original behavior (see DESIGN.md).
func (s *startupService) Create(ctx context.Context, req *dto.CreateStartupRequest) (*model.Startup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	m := &model.Startup{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		WebsiteUrl:  req.WebsiteUrl,
		SocialLinks: req.SocialLinks,
		Order:       req.Order,
	}
	if err := uow.StartupRepository().Create(ctx, m); err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if err := s.replaceFounders(ctx, uow, m.Id, req.FounderIds); err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Startup", m.Id, "created")
	}
	return s.GetById(ctx, m.Id)
}

func (s *startupService) Update(ctx context.Context, id uint, req *dto.UpdateStartupRequest) (*model.Startup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	m, err := uow.StartupRepository().FindById(ctx, id)
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if m == nil {
		_ = uow.Rollback()
		return nil, serverutils.NewNotFoundError("startup not found")
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Logo != nil {
		m.Logo = *req.Logo
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.WebsiteUrl != nil {
		m.WebsiteUrl = *req.WebsiteUrl
	}
	if req.SocialLinks != nil {
		m.SocialLinks = *req.SocialLinks
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if err := uow.StartupRepository().Update(ctx, m); err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if req.FounderIds != nil {
		// A startup must keep at least one founder whose account has the
		// plain user role; validated before the founder set is replaced.
		if err := s.validateFounders(ctx, uow, *req.FounderIds); err != nil {
			_ = uow.Rollback()
			return nil, err
		}
		if err := uow.StartupFounderRepository().DeleteAll(ctx, specification.ByStartupID{StartupID: id}); err != nil {
			_ = uow.Rollback()
			return nil, err
		}
		if err := s.replaceFounders(ctx, uow, id, *req.FounderIds); err != nil {
			_ = uow.Rollback()
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Startup", id, "updated")
	}
	return s.GetById(ctx, id)
}

func (s *startupService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.StartupFounderRepository().DeleteAll(ctx, specification.ByStartupID{StartupID: id}); err != nil {
		_ = uow.Rollback()
		return err
	}
	err := uow.StartupRepository().Delete(ctx, id)
	if err != nil {
		_ = uow.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return serverutils.NewNotFoundError("startup not found")
		}
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	if s.publisher != nil {
		s.publisher.PublishContentChanged(ctx, "Startup", id, "deleted")
	}
	return nil
}

func (s *startupService) replaceFounders(ctx context.Context, uow unitofwork.UnitOfWork, startupId uint, founderIds []uint) error {
	rows := make([]*model.StartupFounder, 0, len(founderIds))
	for _, userId := range founderIds {
		u, err := uow.UserRepository().FindById(ctx, userId)
		if err != nil {
			return err
		}
		if u == nil {
			return serverutils.NewReferentialError("User")
		}
		rows = append(rows, &model.StartupFounder{StartupId: startupId, UserId: userId})
	}
	return uow.StartupFounderRepository().CreateAll(ctx, rows)
}

func (s *startupService) validateFounders(ctx context.Context, uow unitofwork.UnitOfWork, founderIds []uint) error {
	for _, userId := range founderIds {
		u, err := uow.UserRepository().FindById(ctx, userId)
		if err != nil {
			return err
		}
		if u != nil && u.Role == model.RoleUser {
			return nil
		}
	}
	return serverutils.NewValidationError("startup must have at least one founder with role %s", model.RoleUser)
}
