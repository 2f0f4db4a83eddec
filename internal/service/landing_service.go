package service

import (
	"context"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/repository/specification"
	"landing-cms-be/internal/repository/unitofwork"
)

// ILandingService is the aggregate's public face: the read assembler, the
// full-replace synchronization engine and the lazy singleton provisioner.
type ILandingService interface {
	GetLanding(ctx context.Context) (*dto.LandingResponse, error)
	UpdateLanding(ctx context.Context, req *dto.UpdateLandingRequest, actor string) (*dto.LandingResponse, error)
	EnsureLandingPage(ctx context.Context) (*model.LandingPage, error)
}

type landingService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewLandingService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) ILandingService {
	return &landingService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// GetLanding assembles the whole aggregate: heroes and partners by id,
// faqs and vision/mission by their display order, each featured family by the
// association's display order with the referenced entity inlined.
func (s *landingService) GetLanding(ctx context.Context) (*dto.LandingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.assemble(ctx, uow)
}

func (s *landingService) assemble(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.LandingResponse, error) {
	landing, err := uow.LandingPageRepository().Current(ctx)
	if err != nil {
		return nil, err
	}
	if landing == nil {
		return nil, serverutils.NewNotFoundError("landing page not found")
	}

	scope := specification.ByLandingPageID{LandingPageID: landing.Id}
	byId := specification.OrderBy{Field: "id"}
	byOrder := specification.ByDisplayOrder{}

	res := &dto.LandingResponse{Id: landing.Id}

	if res.HeroSections, err = uow.HeroSectionRepository().FindAll(ctx, scope, byId); err != nil {
		return nil, err
	}
	if res.Partners, err = uow.PartnerRepository().FindAll(ctx, scope, byId); err != nil {
		return nil, err
	}
	if res.Footer, err = uow.FooterRepository().FindOne(ctx, scope); err != nil {
		return nil, err
	}
	if res.Faqs, err = uow.FaqRepository().FindAll(ctx, scope, byOrder); err != nil {
		return nil, err
	}
	if res.VisionAndMission, err = uow.VisionAndMissionRepository().FindAll(ctx, scope, byOrder); err != nil {
		return nil, err
	}
	if res.FeaturedEvents, err = uow.FeaturedEventRepository().FindAllWithContent(ctx, scope, byOrder); err != nil {
		return nil, err
	}
	if res.FeaturedPrograms, err = uow.FeaturedProgramRepository().FindAllWithContent(ctx, scope, byOrder); err != nil {
		return nil, err
	}
	if res.FeaturedNews, err = uow.FeaturedNewsRepository().FindAllWithContent(ctx, scope, byOrder); err != nil {
		return nil, err
	}
	if res.FeaturedHistoryAndValues, err = uow.FeaturedHistoryAndValuesRepository().FindAllWithContent(ctx, scope, byOrder); err != nil {
		return nil, err
	}
	if res.FeaturedStartups, err = uow.FeaturedStartupRepository().FindAllWithContent(ctx, scope, byOrder); err != nil {
		return nil, err
	}

	return res, nil
}

// UpdateLanding executes the publish envelope. Every collection named in the
// request is replaced wholesale (delete the scoped set, insert the supplied
// rows) inside one transaction; an error anywhere rolls the whole envelope
// back. Collections absent from the envelope are never touched.
func (s *landingService) UpdateLanding(ctx context.Context, req *dto.UpdateLandingRequest, actor string) (*dto.LandingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	replaced, err := s.applyEnvelope(ctx, uow, req)
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.publisher != nil && len(replaced) > 0 {
		s.publisher.PublishLandingUpdated(ctx, replaced, actor)
	}

	return s.GetLanding(ctx)
}

func (s *landingService) applyEnvelope(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.UpdateLandingRequest) ([]string, error) {
	landing, err := uow.LandingPageRepository().Current(ctx)
	if err != nil {
		return nil, err
	}
	if landing == nil {
		return nil, serverutils.NewNotFoundError("landing page not found")
	}

	scope := specification.ByLandingPageID{LandingPageID: landing.Id}
	replaced := make([]string, 0)

	if req.HeroSections != nil {
		rows := make([]*model.HeroSection, 0, len(*req.HeroSections))
		for _, in := range *req.HeroSections {
			rows = append(rows, &model.HeroSection{
				LandingPageId: landing.Id,
				Title:         in.Title,
				LandingImage:  in.LandingImage,
				Description:   in.Description,
				Order:         in.Order,
			})
		}
		repo := uow.HeroSectionRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "heroSections")
	}

	if req.Partners != nil {
		rows := make([]*model.Partner, 0, len(*req.Partners))
		for _, in := range *req.Partners {
			rows = append(rows, &model.Partner{
				LandingPageId: landing.Id,
				Name:          in.Name,
				Logo:          in.Logo,
				WebsiteUrl:    in.WebsiteUrl,
				Order:         in.Order,
			})
		}
		repo := uow.PartnerRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "partners")
	}

	if req.Faqs != nil {
		rows := make([]*model.Faq, 0, len(*req.Faqs))
		for _, in := range *req.Faqs {
			rows = append(rows, &model.Faq{
				LandingPageId: landing.Id,
				Question:      in.Question,
				Answer:        in.Answer,
				Order:         in.Order,
			})
		}
		repo := uow.FaqRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "faqs")
	}

	if req.VisionAndMission != nil {
		rows := make([]*model.VisionAndMission, 0, len(*req.VisionAndMission))
		for _, in := range *req.VisionAndMission {
			rows = append(rows, &model.VisionAndMission{
				LandingPageId: landing.Id,
				Title:         in.Title,
				Content:       in.Content,
				Order:         in.Order,
			})
		}
		repo := uow.VisionAndMissionRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "visionAndMission")
	}

	if req.Footer != nil {
		repo := uow.FooterRepository()
		// Singleton: drop the whole scoped set first so resubmits can never
		// accumulate a second row.
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.Create(ctx, &model.Footer{
			LandingPageId: landing.Id,
			Content:       req.Footer.Content,
		}); err != nil {
			return nil, err
		}
		replaced = append(replaced, "footer")
	}

	if req.FeaturedEvents != nil {
		rows := make([]*model.FeaturedEvent, 0, len(*req.FeaturedEvents))
		for _, in := range *req.FeaturedEvents {
			if in.EventId == nil {
				return nil, serverutils.NewValidationError("eventId is required")
			}
			if err := s.requireContent(ctx, "Event", *in.EventId, func(id uint) (bool, error) {
				m, err := uow.EventRepository().FindById(ctx, id)
				return m != nil, err
			}); err != nil {
				return nil, err
			}
			rows = append(rows, &model.FeaturedEvent{
				LandingPageId: landing.Id,
				EventId:       *in.EventId,
				Order:         in.Order,
			})
		}
		repo := uow.FeaturedEventRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "featuredEvents")
	}

	if req.FeaturedPrograms != nil {
		rows := make([]*model.FeaturedProgram, 0, len(*req.FeaturedPrograms))
		for _, in := range *req.FeaturedPrograms {
			if in.ProgramId == nil {
				return nil, serverutils.NewValidationError("programId is required")
			}
			if err := s.requireContent(ctx, "Program", *in.ProgramId, func(id uint) (bool, error) {
				m, err := uow.ProgramRepository().FindById(ctx, id)
				return m != nil, err
			}); err != nil {
				return nil, err
			}
			rows = append(rows, &model.FeaturedProgram{
				LandingPageId: landing.Id,
				ProgramId:     *in.ProgramId,
				Order:         in.Order,
			})
		}
		repo := uow.FeaturedProgramRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "featuredPrograms")
	}

	if req.FeaturedNews != nil {
		rows := make([]*model.FeaturedNews, 0, len(*req.FeaturedNews))
		for _, in := range *req.FeaturedNews {
			if in.NewsId == nil {
				return nil, serverutils.NewValidationError("newsId is required")
			}
			if err := s.requireContent(ctx, "News", *in.NewsId, func(id uint) (bool, error) {
				m, err := uow.NewsRepository().FindById(ctx, id)
				return m != nil, err
			}); err != nil {
				return nil, err
			}
			rows = append(rows, &model.FeaturedNews{
				LandingPageId: landing.Id,
				NewsId:        *in.NewsId,
				Order:         in.Order,
			})
		}
		repo := uow.FeaturedNewsRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "featuredNews")
	}

	if req.FeaturedHistoryAndValues != nil {
		rows := make([]*model.FeaturedHistoryAndValues, 0, len(*req.FeaturedHistoryAndValues))
		for _, in := range *req.FeaturedHistoryAndValues {
			if in.HistoryAndValuesId == nil {
				return nil, serverutils.NewValidationError("historyAndValuesId is required")
			}
			if err := s.requireContent(ctx, "HistoryAndValues", *in.HistoryAndValuesId, func(id uint) (bool, error) {
				m, err := uow.HistoryAndValuesRepository().FindById(ctx, id)
				return m != nil, err
			}); err != nil {
				return nil, err
			}
			rows = append(rows, &model.FeaturedHistoryAndValues{
				LandingPageId:      landing.Id,
				HistoryAndValuesId: *in.HistoryAndValuesId,
				Order:              in.Order,
			})
		}
		repo := uow.FeaturedHistoryAndValuesRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "featuredHistoryAndValues")
	}

	if req.FeaturedStartups != nil {
		rows := make([]*model.FeaturedStartup, 0, len(*req.FeaturedStartups))
		for _, in := range *req.FeaturedStartups {
			if in.StartupId == nil {
				return nil, serverutils.NewValidationError("startupId is required")
			}
			if err := s.requireContent(ctx, "Startup", *in.StartupId, func(id uint) (bool, error) {
				m, err := uow.StartupRepository().FindById(ctx, id)
				return m != nil, err
			}); err != nil {
				return nil, err
			}
			rows = append(rows, &model.FeaturedStartup{
				LandingPageId: landing.Id,
				StartupId:     *in.StartupId,
				Order:         in.Order,
			})
		}
		repo := uow.FeaturedStartupRepository()
		if err := repo.DeleteAll(ctx, scope); err != nil {
			return nil, err
		}
		if err := repo.CreateAll(ctx, rows); err != nil {
			return nil, err
		}
		replaced = append(replaced, "featuredStartups")
	}

	return replaced, nil
}

func (s *landingService) requireContent(ctx context.Context, entity string, id uint, exists func(uint) (bool, error)) error {
	ok, err := exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return serverutils.NewReferentialError(entity)
	}
	return nil
}

// EnsureLandingPage is the provisioner: it returns the current landing page,
// creating the singleton row first when none exists. Safe under concurrency;
// see LandingPageRepository.Provision.
func (s *landingService) EnsureLandingPage(ctx context.Context) (*model.LandingPage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LandingPageRepository().Provision(ctx)
}
