package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/config"
	"github.com/Tharak23/bridge-full-stack/handlers"
	"github.com/Tharak23/bridge-full-stack/middleware"
	"github.com/Tharak23/bridge-full-stack/routes"
	bookingSvc "github.com/Tharak23/bridge-full-stack/services/booking"
	"github.com/Tharak23/bridge-full-stack/services/onboarding"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/store/bookings"
	"github.com/Tharak23/bridge-full-stack/store/cart"
	"github.com/Tharak23/bridge-full-stack/store/draft"
	"github.com/Tharak23/bridge-full-stack/store/onboard"
	"github.com/Tharak23/bridge-full-stack/store/payments"
	"github.com/Tharak23/bridge-full-stack/store/profile"
	"github.com/Tharak23/bridge-full-stack/store/requests"
	"github.com/Tharak23/bridge-full-stack/store/tickets"
	"github.com/Tharak23/bridge-full-stack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// draftTTL bounds how long an unconfirmed booking draft survives in Redis.
const draftTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Snapshot store for the durable collections.
	snapshots, sessions := openStores(logger)
	utils.StartHealthMonitor(func() bool {
		return snapshots.Set("health-probe", []byte(`"ok"`)) == nil
	}, time.Minute)

	// Remote backend client; nil keeps the engine fully offline.
	var api *client.Client
	if config.AppConfig.APIBaseURL != "" {
		token := config.AppConfig.APIToken
		api = client.New(config.AppConfig.APIBaseURL, func(ctx context.Context) (string, error) {
			return token, nil
		}, logger)
	}

	// Stores.
	cartStore := cart.New(snapshots)
	draftBox := draft.NewMailbox(sessions)
	bookingRepo := bookings.NewRepository(snapshots)
	paymentRepo := payments.NewRepository(snapshots)
	requestRepo := requests.NewRepository(snapshots)
	ticketRepo := tickets.NewRepository(snapshots)
	onboardDraft := onboard.New(snapshots)
	profileRepo := profile.NewRepository(snapshots)

	// Services.
	funnelService := &bookingSvc.DefaultFunnelService{
		Drafts:   draftBox,
		Bookings: bookingRepo,
		Payments: paymentRepo,
		Cart:     cartStore,
		Profiles: profileRepo,
		API:      api,
		Logger:   logger,
	}
	onboardingService := &onboarding.DefaultService{
		Draft:  onboardDraft,
		API:    api,
		Logger: logger,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLoggerMiddleware(logger))
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Cart:     handlers.NewCartHandler(cartStore),
		Booking:  handlers.NewBookingHandler(funnelService, bookingRepo, logger),
		Payment:  handlers.NewPaymentHandler(paymentRepo),
		Request:  handlers.NewRequestHandler(requestRepo),
		Ticket:   handlers.NewTicketHandler(ticketRepo),
		Onboard:  handlers.NewOnboardHandler(onboardingService, api),
		Profile:  handlers.NewProfileHandler(profileRepo, api),
		Catalog:  handlers.NewCatalogHandler(api),
		Provider: handlers.NewProviderHandler(api),
	}
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Bridge engine listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down Bridge engine")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Bridge engine stopped")
}

// openStores builds the snapshot store named by STORAGE_BACKEND plus the
// session store backing the single-slot booking draft. Redis deployments get
// a TTL-bounded session store; everything else shares the snapshot store.
func openStores(logger *zap.Logger) (storage.Store, storage.Store) {
	switch config.AppConfig.StorageBackend {
	case "memory":
		s := storage.NewMemoryStore()
		return s, s
	case "redis":
		rdb, err := storage.NewRedisClient(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
		}
		snapshots := storage.NewRedisStore(rdb, "bridge:", 0)
		sessions := storage.NewRedisStore(rdb, "bridge:session:", draftTTL)
		return snapshots, sessions
	case "mongo":
		mc, err := storage.NewMongoClient(config.AppConfig.MongoURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to connect to mongo: %v", err)
		}
		s := storage.NewMongoStore(mc, "bridge", "snapshots")
		return s, s
	default:
		s := storage.NewFileStore(config.AppConfig.DataDir)
		return s, s
	}
}
