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

// ICollectionService covers direct CRUD on the owned collections. Bulk edits
// go through the synchronization engine instead; these endpoints exist for
// single-row edits from the admin UI.
type ICollectionService interface {
	GetHeroSections(ctx context.Context) ([]*model.HeroSection, error)
	GetHeroSection(ctx context.Context, id uint) (*model.HeroSection, error)
	CreateHeroSection(ctx context.Context, req *dto.CreateHeroSectionRequest) (*model.HeroSection, error)
	UpdateHeroSection(ctx context.Context, id uint, req *dto.UpdateHeroSectionRequest) (*model.HeroSection, error)
	DeleteHeroSection(ctx context.Context, id uint) error

	GetPartners(ctx context.Context) ([]*model.Partner, error)
	GetPartner(ctx context.Context, id uint) (*model.Partner, error)
	CreatePartner(ctx context.Context, req *dto.CreatePartnerRequest) (*model.Partner, error)
	UpdatePartner(ctx context.Context, id uint, req *dto.UpdatePartnerRequest) (*model.Partner, error)
	DeletePartner(ctx context.Context, id uint) error

	GetFaqs(ctx context.Context) ([]*model.Faq, error)
	GetFaq(ctx context.Context, id uint) (*model.Faq, error)
	CreateFaq(ctx context.Context, req *dto.CreateFaqRequest) (*model.Faq, error)
	UpdateFaq(ctx context.Context, id uint, req *dto.UpdateFaqRequest) (*model.Faq, error)
	DeleteFaq(ctx context.Context, id uint) error

	GetVisionAndMissions(ctx context.Context) ([]*model.VisionAndMission, error)
	GetVisionAndMission(ctx context.Context, id uint) (*model.VisionAndMission, error)
	CreateVisionAndMission(ctx context.Context, req *dto.CreateVisionAndMissionRequest) (*model.VisionAndMission, error)
	UpdateVisionAndMission(ctx context.Context, id uint, req *dto.UpdateVisionAndMissionRequest) (*model.VisionAndMission, error)
	DeleteVisionAndMission(ctx context.Context, id uint) error

	GetFooter(ctx context.Context) (*model.Footer, error)
	UpsertFooter(ctx context.Context, req *dto.UpsertFooterRequest) (*model.Footer, error)
	DeleteFooter(ctx context.Context, id uint) error
}

type collectionService struct {
	uowFactory unitofwork.RepositoryFactory
	landing    ILandingService
}

func NewCollectionService(uowFactory unitofwork.RepositoryFactory, landing ILandingService) ICollectionService {
	return &collectionService{uowFactory: uowFactory, landing: landing}
}

func (s *collectionService) requirePage(ctx context.Context, uow unitofwork.UnitOfWork, id uint) error {
	lp, err := uow.LandingPageRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if lp == nil {
		return serverutils.NewReferentialError("LandingPage")
	}
	return nil
}

// Hero sections

func (s *collectionService) GetHeroSections(ctx context.Context) ([]*model.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.HeroSectionRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *collectionService) GetHeroSection(ctx context.Context, id uint) (*model.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.HeroSectionRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("hero section not found")
	}
	return m, nil
}

func (s *collectionService) CreateHeroSection(ctx context.Context, req *dto.CreateHeroSectionRequest) (*model.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requirePage(ctx, uow, *req.LandingPageId); err != nil {
		return nil, err
	}
	m := &model.HeroSection{
		LandingPageId: *req.LandingPageId,
		Title:         req.Title,
		LandingImage:  req.LandingImage,
		Description:   req.Description,
		Order:         req.Order,
	}
	if err := uow.HeroSectionRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) UpdateHeroSection(ctx context.Context, id uint, req *dto.UpdateHeroSectionRequest) (*model.HeroSection, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.HeroSectionRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("hero section not found")
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
	if err := uow.HeroSectionRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) DeleteHeroSection(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.HeroSectionRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("hero section not found")
	}
	return err
}

// Partners

func (s *collectionService) GetPartners(ctx context.Context) ([]*model.Partner, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PartnerRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func (s *collectionService) GetPartner(ctx context.Context, id uint) (*model.Partner, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.PartnerRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("partner not found")
	}
	return m, nil
}

// CreatePartner goes through the provisioner when landingPageId is omitted:
// the first partner ever created may be what brings the landing page into
// existence.
func (s *collectionService) CreatePartner(ctx context.Context, req *dto.CreatePartnerRequest) (*model.Partner, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var pageId uint
	if req.LandingPageId == nil {
		lp, err := s.landing.EnsureLandingPage(ctx)
		if err != nil {
			return nil, err
		}
		pageId = lp.Id
	} else {
		if err := s.requirePage(ctx, uow, *req.LandingPageId); err != nil {
			return nil, err
		}
		pageId = *req.LandingPageId
	}

	m := &model.Partner{
		LandingPageId: pageId,
		Name:          req.Name,
		Logo:          req.Logo,
		WebsiteUrl:    req.WebsiteUrl,
		Order:         req.Order,
	}
	if err := uow.PartnerRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) UpdatePartner(ctx context.Context, id uint, req *dto.UpdatePartnerRequest) (*model.Partner, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.PartnerRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("partner not found")
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Logo != nil {
		m.Logo = *req.Logo
	}
	if req.WebsiteUrl != nil {
		m.WebsiteUrl = *req.WebsiteUrl
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if err := uow.PartnerRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) DeletePartner(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.PartnerRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("partner not found")
	}
	return err
}

// FAQs

func (s *collectionService) GetFaqs(ctx context.Context) ([]*model.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FaqRepository().FindAll(ctx, specification.ByDisplayOrder{})
}

func (s *collectionService) GetFaq(ctx context.Context, id uint) (*model.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.FaqRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("faq not found")
	}
	return m, nil
}

func (s *collectionService) CreateFaq(ctx context.Context, req *dto.CreateFaqRequest) (*model.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requirePage(ctx, uow, *req.LandingPageId); err != nil {
		return nil, err
	}
	m := &model.Faq{
		LandingPageId: *req.LandingPageId,
		Question:      req.Question,
		Answer:        req.Answer,
		Order:         req.Order,
	}
	if err := uow.FaqRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) UpdateFaq(ctx context.Context, id uint, req *dto.UpdateFaqRequest) (*model.Faq, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.FaqRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("faq not found")
	}
	if req.Question != nil {
		m.Question = *req.Question
	}
	if req.Answer != nil {
		m.Answer = *req.Answer
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if err := uow.FaqRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) DeleteFaq(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.FaqRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("faq not found")
	}
	return err
}

// Vision & mission

func (s *collectionService) GetVisionAndMissions(ctx context.Context) ([]*model.VisionAndMission, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VisionAndMissionRepository().FindAll(ctx, specification.ByDisplayOrder{})
}

func (s *collectionService) GetVisionAndMission(ctx context.Context, id uint) (*model.VisionAndMission, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.VisionAndMissionRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("vision and mission entry not found")
	}
	return m, nil
}

func (s *collectionService) CreateVisionAndMission(ctx context.Context, req *dto.CreateVisionAndMissionRequest) (*model.VisionAndMission, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requirePage(ctx, uow, *req.LandingPageId); err != nil {
		return nil, err
	}
	m := &model.VisionAndMission{
		LandingPageId: *req.LandingPageId,
		Title:         req.Title,
		Content:       req.Content,
		Order:         req.Order,
	}
	if err := uow.VisionAndMissionRepository().Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) UpdateVisionAndMission(ctx context.Context, id uint, req *dto.UpdateVisionAndMissionRequest) (*model.VisionAndMission, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.VisionAndMissionRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("vision and mission entry not found")
	}
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
	if err := uow.VisionAndMissionRepository().Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) DeleteVisionAndMission(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.VisionAndMissionRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("vision and mission entry not found")
	}
	return err
}

// Footer

func (s *collectionService) GetFooter(ctx context.Context) (*model.Footer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	m, err := uow.FooterRepository().FindOne(ctx)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, serverutils.NewNotFoundError("footer not found")
	}
	return m, nil
}

// UpsertFooter keeps the footer a singleton: the scoped set is dropped and a
// single fresh row created, in one transaction.
func (s *collectionService) UpsertFooter(ctx context.Context, req *dto.UpsertFooterRequest) (*model.Footer, error) {
	var pageId uint
	if req.LandingPageId == nil {
		lp, err := s.landing.EnsureLandingPage(ctx)
		if err != nil {
			return nil, err
		}
		pageId = lp.Id
	} else {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := s.requirePage(ctx, uow, *req.LandingPageId); err != nil {
			return nil, err
		}
		pageId = *req.LandingPageId
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.FooterRepository().DeleteAll(ctx, specification.ByLandingPageID{LandingPageID: pageId}); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	m := &model.Footer{LandingPageId: pageId, Content: req.Content}
	if err := uow.FooterRepository().Create(ctx, m); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *collectionService) DeleteFooter(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.FooterRepository().Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return serverutils.NewNotFoundError("footer not found")
	}
	return err
}
