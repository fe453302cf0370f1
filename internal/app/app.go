package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/russkiih/bookapp/internal/config"
	"github.com/russkiih/bookapp/internal/handler"
	"github.com/russkiih/bookapp/internal/middleware"
	"github.com/russkiih/bookapp/internal/notification"
	"github.com/russkiih/bookapp/internal/repository"
	"github.com/russkiih/bookapp/internal/repository/cache"
	"github.com/russkiih/bookapp/internal/router"
	"github.com/russkiih/bookapp/internal/scheduler"
	"github.com/russkiih/bookapp/internal/service"
	"github.com/russkiih/bookapp/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *notification.AMQPPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"bookapp",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if !a.cfg.Redis.Enabled() {
		a.log.Warn("redis address is empty, catalog cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx, rdb); err != nil {
		_ = rdb.Close()
		return err
	}

	a.redis = rdb
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initNotifier() (ports.BookingNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}
	notifiers := notification.Fanout{tg}

	if a.cfg.RabbitMQ.Enabled() {
		pub, err := notification.NewAMQPPublisher(
			a.cfg.RabbitMQ.URL,
			a.cfg.RabbitMQ.Exchange,
			a.cfg.RabbitMQ.PublishTimeout,
			a.log,
		)
		if err != nil {
			return nil, fmt.Errorf("init rabbitmq publisher: %w", err)
		}
		a.publisher = pub
		notifiers = append(notifiers, pub)
	} else {
		a.log.Warn("rabbitmq url is empty, booking events disabled")
	}

	return notifiers, nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	workingHoursRepo := repository.NewWorkingHoursRepo(a.db)
	adminRepo := repository.NewAdminRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)

	var catalog ports.ServiceCatalog = repository.NewServiceRepo(a.db)
	if a.redis != nil {
		catalog = cache.NewCatalog(catalog, a.redis, a.cfg.Redis.CacheTTL, a.log)
	}

	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	bookingService := service.NewBookingService(bookingRepo, catalog, n, a.log)
	dashboardService := service.NewDashboardService(bookingRepo, n, a.log)
	settingsService := service.NewSettingsService(catalog, workingHoursRepo, a.log)
	authService := service.NewAuthService(adminRepo, sessionRepo, a.cfg.Session.TTL, a.log)

	if a.cfg.Admin.Enabled() {
		if err = authService.EnsureAdmin(context.Background(), a.cfg.Admin.Email, a.cfg.Admin.Password); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	}

	a.scheduler = scheduler.New(
		authService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		bookingService,
		dashboardService,
		settingsService,
		authService,
		handler.CookieConfig{
			Name:   a.cfg.Session.CookieName,
			Secure: a.cfg.Session.Secure,
			TTL:    a.cfg.Session.TTL,
		},
	)

	limiter := middleware.NewRateLimiter(
		a.cfg.RateLimit.PerMinute,
		a.cfg.RateLimit.Burst,
		a.cfg.RateLimit.TTL,
	)

	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	}
	if len(a.cfg.CORS.AllowOrigins) > 0 {
		mw = append(mw, cors.New(cors.Config{
			AllowOrigins:     a.cfg.CORS.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			AdminPages: middleware.SessionGuard(authService, a.cfg.Session.CookieName, a.log),
			AdminAPI:   middleware.RequireSession(authService, a.cfg.Session.CookieName, a.log),
			RateLimit:  limiter.Middleware(a.log),
		},
		mw...,
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "rabbitmq close failed",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "redis close failed",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
