package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"HomeChef-Backend/internal/api/handlers"
	"HomeChef-Backend/internal/api/routes"
	"HomeChef-Backend/internal/middleware"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/internal/utils/mailing"
	"HomeChef-Backend/internal/utils/storage"
	"HomeChef-Backend/pkg/chat"
	"HomeChef-Backend/pkg/chef"
	"HomeChef-Backend/pkg/discovery"
	"HomeChef-Backend/pkg/dish"
	"HomeChef-Backend/pkg/favourite"
	"HomeChef-Backend/pkg/jwt"
	"HomeChef-Backend/pkg/midtrans"
	"HomeChef-Backend/pkg/notification"
	"HomeChef-Backend/pkg/order"
	"HomeChef-Backend/pkg/push"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/session"
	"HomeChef-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Dependencies are the external collaborators of the application.
type Dependencies struct {
	DB        *gorm.DB
	Sessions  session.Store
	Push      push.Gateway
	S3        storage.AwsS3
	Mailer    mailing.Mailer
	Social    user.SocialVerifier
	Snap      midtrans.SnapClient
	JWT       jwt.JWTService
	AccessLog io.Writer
	RateLimit int
}

// NewDependencies builds every collaborator from the loaded configuration.
// Optional services (S3, FCM, SMTP) degrade instead of failing startup.
func NewDependencies(ctx context.Context, db *gorm.DB, rdb *redis.Client) (Dependencies, error) {
	deps := Dependencies{
		DB:        db,
		Mailer:    mailing.NewMailer(mailing.LoadMailConfig()),
		Social:    user.NewGoogleVerifier(utils.GetConfig("GOOGLE_CLIENT_ID")),
		Snap:      midtrans.NewSnapClient(utils.GetConfig("SERVER_KEY"), utils.GetConfigBool("IsProd")),
		JWT:       jwt.NewJWTService(utils.GetConfig("JWT_SECRET"), time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES", 120))*time.Minute),
		RateLimit: 10,
	}

	if rdb != nil {
		deps.Sessions = session.NewRedisStore(rdb)
	} else {
		utils.Log.Warn("REDIS_ADDR not set, sessions are kept in memory")
		deps.Sessions = session.NewMemoryStore()
	}

	gateway, err := push.NewGateway(ctx, utils.GetConfig("FIREBASE_CREDENTIALS_FILE"))
	if err != nil {
		return Dependencies{}, err
	}
	deps.Push = gateway

	s3, err := storage.NewAwsS3()
	if err != nil {
		utils.Log.WithError(err).Warn("object storage disabled")
	} else {
		deps.S3 = s3
	}

	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return Dependencies{}, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return Dependencies{}, fmt.Errorf("error opening file: %w", err)
	}
	deps.AccessLog = file

	return deps, nil
}

func NewApp(deps Dependencies) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: handlers.MaxUploadSize + 1<<20,
	})
	middlewares := middleware.NewMiddleware(deps.Sessions)
	validator := utils.Validate
	db := deps.DB

	// setting up logging and limiter
	accessLog := deps.AccessLog
	if accessLog == nil {
		accessLog = io.Discard
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     accessLog,
	}))
	if deps.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	chefRepository := chef.NewChefRepository(db)
	dishRepository := dish.NewDishRepository(db)
	orderRepository := order.NewOrderRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	chatRepository := chat.NewChatRepository(db)
	favouriteRepository := favourite.NewFavouriteRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	discoveryRepository := discovery.NewDiscoveryRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	userService := user.NewUserService(
		userRepository,
		deps.JWT,
		deps.Sessions,
		deps.Mailer,
		deps.Social,
		user.OtpConfig{
			TTL:       time.Duration(utils.GetConfigInt("OTP_TTL_MINUTES", 10)) * time.Minute,
			FixedCode: utils.GetConfig("OTP_FIXED_CODE"),
		},
	)
	notificationService := notification.NewNotificationService(notificationRepository, userRepository, deps.Push)
	chefService := chef.NewChefService(chefRepository, userRepository)
	dishService := dish.NewDishService(dishRepository, userRepository, reviewRepository, deps.S3)
	orderService := order.NewOrderService(orderRepository, reviewRepository, userRepository, notificationService)
	chatService := chat.NewChatService(chatRepository, orderRepository, notificationService)
	favouriteService := favourite.NewFavouriteService(favouriteRepository, dishRepository, userRepository)
	discoveryService := discovery.NewDiscoveryService(discovery.Repositories{
		Discovery: discoveryRepository,
		Dish:      dishRepository,
		User:      userRepository,
		Review:    reviewRepository,
		Favourite: favouriteRepository,
		Order:     orderRepository,
	}, utils.GetConfigFloat("SEARCH_RADIUS_KM", 0))
	midtransService := midtrans.NewMidtransService(
		midtransRepository,
		orderRepository,
		deps.Snap,
		utils.GetConfig("SERVER_KEY"),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	addressHandler := handlers.NewAddressHandler(userService, validator)
	chefHandler := handlers.NewChefHandler(chefService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, favouriteService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)
	uploadHandler := handlers.NewUploadHandler(deps.S3)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		AddressHandler:      addressHandler,
		ChefHandler:         chefHandler,
		DishHandler:         dishHandler,
		OrderHandler:        orderHandler,
		ChatHandler:         chatHandler,
		NotificationHandler: notificationHandler,
		DiscoveryHandler:    discoveryHandler,
		MidtransHandler:     midtransHandler,
		UploadHandler:       uploadHandler,
		Middleware:          middlewares,
		JWTService:          deps.JWT,
	}
	routesConfig.Setup()
	return app, nil
}
