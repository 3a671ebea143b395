package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"marinahub/internal/cache"
	"marinahub/internal/config"
	"marinahub/internal/database"
	"marinahub/internal/datasource"
	"marinahub/internal/domain"
	"marinahub/internal/middleware"
	"marinahub/internal/modules/auth"
	"marinahub/internal/modules/berth"
	"marinahub/internal/modules/billing"
	"marinahub/internal/modules/booking"
	"marinahub/internal/modules/contract"
	"marinahub/internal/modules/datasourceapi"
	"marinahub/internal/modules/group"
	"marinahub/internal/modules/marina"
	"marinahub/internal/modules/owner"
	"marinahub/internal/modules/workorder"
	jwtsvc "marinahub/internal/pkg/jwt"
	"marinahub/internal/repository"
	syncmon "marinahub/internal/sync"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	if *configFile != "" {
		config.SetConfigFile(*configFile)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("loading config")
	}

	log := newLogger(cfg)

	settings := datasource.NewSettings(datasource.Mode(cfg.DefaultMode))

	liveDB, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	demoDB, err := database.Connect(cfg.DemoDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("opening demo store")
	}
	for _, db := range []*gorm.DB{liveDB, demoDB} {
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("running migrations")
		}
	}

	// Both stores stay open so PUT /datasource takes effect without a restart.
	conn := database.NewSelector(liveDB, demoDB, settings)

	summaryCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisEnabled, cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}

	groupRepo := repository.NewGroupRepository(conn)
	marinaRepo := repository.NewMarinaRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	ownerRepo := repository.NewOwnerRepository(conn)
	boatRepo := repository.NewBoatRepository(conn)
	berthRepo := repository.NewBerthRepository(conn)
	contractRepo := repository.NewContractRepository(conn)
	bookingRepo := repository.NewBookingRepository(conn)
	invoiceRepo := repository.NewInvoiceRepository(conn)
	paymentRepo := repository.NewPaymentRepository(conn)
	workOrderRepo := repository.NewWorkOrderRepository(conn)
	countsRepo := repository.NewCountsRepository(conn)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	groupHandler := group.NewHandler(group.NewService(groupRepo, summaryCache))
	marinaHandler := marina.NewHandler(marina.NewService(marinaRepo, summaryCache))
	ownerHandler := owner.NewHandler(owner.NewService(ownerRepo, boatRepo))
	berthHandler := berth.NewHandler(berth.NewService(berthRepo))
	contractHandler := contract.NewHandler(contract.NewService(contractRepo, berthRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	billingHandler := billing.NewHandler(billing.NewService(invoiceRepo, paymentRepo))
	workOrderHandler := workorder.NewHandler(workorder.NewService(workOrderRepo))

	hub := datasource.NewHub()
	validator := datasource.NewValidator(settings, countsRepo)
	datasourceHandler := datasourceapi.NewHandler(settings, validator, hub, log)

	monitor := syncmon.NewMonitor(marinaRepo, dbProber(conn), cfg.SyncInterval, cfg.SyncTimeout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go datasource.RelayModeChanges(ctx, settings, hub)

	if err := monitor.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("starting connectivity monitor")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.CORS(cfg.CorsOrigins))
	r.Use(middleware.RequestLogger(log))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/users", middleware.AdminOnly(), authHandler.CreateUser)

			groups := protected.Group("/groups")
			{
				groups.GET("", groupHandler.List)
				groups.GET("/:id", groupHandler.Get)
				groups.GET("/:id/summary", groupHandler.Summary)

				admin := groups.Group("", middleware.AdminOnly())
				admin.POST("", groupHandler.Create)
				admin.PUT("/:id", groupHandler.Update)
				admin.DELETE("/:id", groupHandler.Delete)
			}

			marinas := protected.Group("/marinas")
			{
				marinas.GET("", marinaHandler.List)
				marinas.GET("/:id", marinaHandler.Get)
				marinas.GET("/:id/summary", marinaHandler.Summary)

				mgr := marinas.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", marinaHandler.Create)
				mgr.PUT("/:id", marinaHandler.Update)
				mgr.DELETE("/:id", marinaHandler.Delete)
			}

			owners := protected.Group("/owners")
			{
				owners.GET("", ownerHandler.List)
				owners.GET("/:id", ownerHandler.Get)
				owners.GET("/:id/summary", ownerHandler.Summary)
				owners.GET("/:id/boats", ownerHandler.ListBoats)

				mgr := owners.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", ownerHandler.Create)
				mgr.PUT("/:id", ownerHandler.Update)
				mgr.DELETE("/:id", ownerHandler.Delete)
				mgr.POST("/:id/boats", ownerHandler.AddBoat)
				mgr.PUT("/:id/boats/:boat_id/berth", ownerHandler.AssignBerth)
			}

			berths := protected.Group("/berths")
			{
				berths.GET("", berthHandler.List)
				berths.GET("/:id", berthHandler.Get)
				berths.GET("/:id/summary", berthHandler.Summary)

				mgr := berths.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", berthHandler.Create)
				mgr.PUT("/:id", berthHandler.Update)
				mgr.DELETE("/:id", berthHandler.Delete)
			}

			contracts := protected.Group("/contracts")
			{
				contracts.GET("", contractHandler.List)
				contracts.GET("/:id", contractHandler.Get)
				contracts.GET("/:id/summary", contractHandler.Summary)

				mgr := contracts.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", contractHandler.Create)
				mgr.PATCH("/:id/status", contractHandler.UpdateStatus)
				mgr.DELETE("/:id", contractHandler.Delete)
			}

			bookings := protected.Group("/bookings")
			{
				bookings.GET("", bookingHandler.List)
				bookings.GET("/:id", bookingHandler.Get)
				bookings.POST("", bookingHandler.Create)

				mgr := bookings.Group("", middleware.ManagerOrAdmin())
				mgr.PATCH("/:id/status", bookingHandler.UpdateStatus)
				mgr.POST("/:id/cancel", bookingHandler.Cancel)
			}

			billingGroup := protected.Group("/billing")

			invoices := billingGroup.Group("/invoices")
			{
				invoices.GET("", billingHandler.ListInvoices)
				invoices.GET("/:id", billingHandler.GetInvoice)

				mgr := invoices.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", billingHandler.CreateInvoice)
				mgr.PATCH("/:id/status", billingHandler.UpdateInvoiceStatus)
			}

			payments := billingGroup.Group("/payments")
			{
				payments.GET("", billingHandler.ListPayments)
				payments.GET("/:id", billingHandler.GetPayment)

				mgr := payments.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", billingHandler.RecordPayment)
				mgr.PATCH("/:id/status", billingHandler.UpdatePaymentStatus)
			}

			workOrders := protected.Group("/work-orders")
			{
				workOrders.GET("", workOrderHandler.List)
				workOrders.GET("/:id", workOrderHandler.Get)

				mgr := workOrders.Group("", middleware.ManagerOrAdmin())
				mgr.POST("", workOrderHandler.Create)
				mgr.PUT("/:id", workOrderHandler.Update)
				mgr.PATCH("/:id/status", workOrderHandler.UpdateStatus)
				mgr.DELETE("/:id", workOrderHandler.Delete)
			}

			ds := protected.Group("/datasource")
			{
				ds.GET("", datasourceHandler.GetMode)
				ds.GET("/validate", datasourceHandler.ValidateAll)
				ds.GET("/validate/:type", datasourceHandler.Validate)
				ds.GET("/ws", datasourceHandler.Websocket)
				ds.PUT("", middleware.AdminOnly(), datasourceHandler.SetMode)
			}
		}
	}

	srv := &http.Server{
		Addr:         cfg.HTTPServerAddress,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServerTimeout,
		WriteTimeout: cfg.HTTPServerTimeout,
	}

	go func() {
		log.Info().Str("address", cfg.HTTPServerAddress).Str("mode", string(settings.Mode())).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := monitor.Stop(); err != nil {
		log.Error().Err(err).Msg("stopping connectivity monitor")
	}
	hub.Close()
}

// dbProber treats a marina as reachable when the current store answers
// within the probe deadline. Marinas without their own endpoint share this
// check.
func dbProber(conn *database.Selector) syncmon.ProberFunc {
	return func(ctx context.Context, _ domain.Marina) bool {
		sqlDB, err := conn.DB().DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.LogFormat == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
