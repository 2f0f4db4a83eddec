package bootstrap

import (
	"context"
	"log"

	"landing-cms-be/internal/config"
	"landing-cms-be/internal/controller"
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/handler"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/logger"
	"landing-cms-be/internal/pkg/mailer"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/unitofwork"
	"landing-cms-be/internal/service"
	"landing-cms-be/internal/websocket"
	"landing-cms-be/pkg/imagestore"
	pktNats "landing-cms-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LandingController    controller.ILandingController
	CollectionController controller.ICollectionController
	EventController      controller.IEventController
	ProgramController    controller.IProgramController
	NewsController       controller.INewsController
	HistoryController    controller.IHistoryAndValuesController
	StartupController    controller.IStartupController
	FeaturedControllers  []controller.Registrable
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	UploadController     controller.IUploadController

	// Background services, run by main
	ConsumerService service.IConsumerService

	// WebSockets
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
		)
	}

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] failed to connect to NATS: %v", err)
			natsPub = nil
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] failed to parse Redis URL: %v, using direct addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] failed to connect to Redis: %v", err)
		}
	}

	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(pubSub, natsPub, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		uowFactory,
		wsHub,
		emailService,
		cfg.App.AdminEmail,
		sysLogger,
	)

	// Domain services
	landingService := service.NewLandingService(uowFactory, publisherService)
	collectionService := service.NewCollectionService(uowFactory, landingService)
	eventService := service.NewEventService(uowFactory, publisherService)
	programService := service.NewProgramService(uowFactory, publisherService)
	newsService := service.NewNewsService(uowFactory, publisherService)
	historyService := service.NewHistoryAndValuesService(uowFactory, landingService, publisherService)
	startupService := service.NewStartupService(uowFactory, publisherService)

	featuredEventService := service.NewFeaturedService[model.FeaturedEvent](
		uowFactory, "Event",
		func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[model.FeaturedEvent] {
			return uow.FeaturedEventRepository()
		},
		contentExists(func(uow unitofwork.UnitOfWork) contract.CrudRepository[model.Event] {
			return uow.EventRepository()
		}),
		publisherService,
	)
	featuredProgramService := service.NewFeaturedService[model.FeaturedProgram](
		uowFactory, "Program",
		func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[model.FeaturedProgram] {
			return uow.FeaturedProgramRepository()
		},
		contentExists(func(uow unitofwork.UnitOfWork) contract.CrudRepository[model.Program] {
			return uow.ProgramRepository()
		}),
		publisherService,
	)
	featuredNewsService := service.NewFeaturedService[model.FeaturedNews](
		uowFactory, "News",
		func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[model.FeaturedNews] {
			return uow.FeaturedNewsRepository()
		},
		contentExists(func(uow unitofwork.UnitOfWork) contract.CrudRepository[model.News] {
			return uow.NewsRepository()
		}),
		publisherService,
	)
	featuredHistoryService := service.NewFeaturedService[model.FeaturedHistoryAndValues](
		uowFactory, "HistoryAndValues",
		func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[model.FeaturedHistoryAndValues] {
			return uow.FeaturedHistoryAndValuesRepository()
		},
		contentExists(func(uow unitofwork.UnitOfWork) contract.CrudRepository[model.HistoryAndValues] {
			return uow.HistoryAndValuesRepository()
		}),
		publisherService,
	)
	featuredStartupService := service.NewFeaturedService[model.FeaturedStartup](
		uowFactory, "Startup",
		func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[model.FeaturedStartup] {
			return uow.FeaturedStartupRepository()
		},
		func(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (bool, error) {
			m, err := uow.StartupRepository().FindById(ctx, id)
			return m != nil, err
		},
		publisherService,
	)

	var oauthConfig *oauth2.Config
	if cfg.Google.ClientID != "" {
		oauthConfig = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, rdb, oauthConfig)
	userService := service.NewUserService(uowFactory)

	jwtGuard := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, rdb)
	imageStore := imagestore.NewDiskStore(cfg.App.UploadDir, cfg.App.BaseURL+"/uploads")

	return &Container{
		LandingController:    controller.NewLandingController(landingService),
		CollectionController: controller.NewCollectionController(collectionService),
		EventController:      controller.NewEventController(eventService),
		ProgramController:    controller.NewProgramController(programService),
		NewsController:       controller.NewNewsController(newsService),
		HistoryController:    controller.NewHistoryAndValuesController(historyService),
		StartupController:    controller.NewStartupController(startupService),
		FeaturedControllers: []controller.Registrable{
			controller.NewFeaturedController[model.FeaturedEvent, dto.CreateFeaturedEventRequest, dto.UpdateFeaturedEventRequest](
				"/featured-events", featuredEventService),
			controller.NewFeaturedController[model.FeaturedProgram, dto.CreateFeaturedProgramRequest, dto.UpdateFeaturedProgramRequest](
				"/featured-programs", featuredProgramService),
			controller.NewFeaturedController[model.FeaturedNews, dto.CreateFeaturedNewsRequest, dto.UpdateFeaturedNewsRequest](
				"/featured-news", featuredNewsService),
			controller.NewFeaturedController[model.FeaturedHistoryAndValues, dto.CreateFeaturedHistoryAndValuesRequest, dto.UpdateFeaturedHistoryAndValuesRequest](
				"/featured-history-and-values", featuredHistoryService),
			controller.NewFeaturedController[model.FeaturedStartup, dto.CreateFeaturedStartupRequest, dto.UpdateFeaturedStartupRequest](
				"/featured-startups", featuredStartupService),
		},
		AuthController:   controller.NewAuthController(authService),
		UserController:   controller.NewUserController(userService, jwtGuard),
		UploadController: controller.NewUploadController(imageStore, jwtGuard),

		ConsumerService: consumerService,

		NotificationHandler: handler.NewNotificationHandler(wsHub, cfg.Auth.JwtSecret, sysLogger),
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}

// contentExists adapts a plain CRUD repository accessor into the existence
// probe the generic featured service validates against.
func contentExists[M any](repo func(uow unitofwork.UnitOfWork) contract.CrudRepository[M]) func(context.Context, unitofwork.UnitOfWork, uint) (bool, error) {
	return func(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (bool, error) {
		m, err := repo(uow).FindById(ctx, id)
		return m != nil, err
	}
}
