package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/config"
	"github.com/manoj8056887579/careerhq-sub001/internal/database"
	apphttp "github.com/manoj8056887579/careerhq-sub001/internal/http"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/handlers"
	httpmw "github.com/manoj8056887579/careerhq-sub001/internal/http/middleware"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/captcha"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/mailer"
	"github.com/manoj8056887579/careerhq-sub001/internal/observability"
	"github.com/manoj8056887579/careerhq-sub001/internal/repository/postgres"
	"github.com/manoj8056887579/careerhq-sub001/internal/security"
	"github.com/manoj8056887579/careerhq-sub001/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()
	database.Migrate(db)

	adminRepo := postgres.NewAdminRepository(db)
	moduleRepo := postgres.NewModuleRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	leadRepo := postgres.NewLeadRepository(db)
	partnerRepo := postgres.NewPartnerRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	videoRepo := postgres.NewVideoRepository(db)

	sessions := security.NewSessionProvider(cfg.SessionSecret, cfg.SessionTTL)

	var objectStore storage.ObjectStore
	if cfg.S3Bucket != "" {
		store, err := storage.NewS3Store(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
		})
		if err != nil {
			log.Fatalf("failed to init object store: %v", err)
		}
		objectStore = store
	}
	resumeStore, err := storage.NewResumeStore(cfg.ResumeDir)
	if err != nil {
		log.Fatalf("failed to init resume store: %v", err)
	}

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		port, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil {
			log.Fatalf("invalid SMTP_PORT: %v", err)
		}
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     port,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		})
	} else {
		mail = mailer.NewLogMailer(logger.Zerolog())
	}

	captchaClient := captcha.NewClient(cfg.CaptchaSecret, cfg.CaptchaVerifyURL, &http.Client{Timeout: 5 * time.Second})
	skipCaptcha := cfg.IsDevelopment() || !captchaClient.Enabled()

	mediaService := app.NewMediaService(objectStore, cfg.S3PublicBase, logger)
	authService := app.NewAuthService(adminRepo, sessions, mail, logger, cfg.BaseURL)
	moduleService := app.NewModuleService(moduleRepo, categoryRepo, mediaService, logger)
	jobService := app.NewJobService(jobRepo, logger)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, resumeStore, logger)
	leadService := app.NewLeadService(leadRepo, captchaClient, skipCaptcha, logger)
	partnerService := app.NewPartnerService(partnerRepo, captchaClient, skipCaptcha, logger)
	companyService := app.NewCompanyService(companyRepo, mediaService, logger)
	videoService := app.NewVideoService(videoRepo, logger)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.Seed(seedCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		cancelSeed()
		log.Fatalf("failed to seed admin account: %v", err)
	}
	cancelSeed()

	var limiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	session := httpmw.NewSessionMiddleware(sessions, !cfg.IsDevelopment())

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, session),
		ModuleHandler:      handlers.NewModuleHandler(moduleService),
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		LeadHandler:        handlers.NewLeadHandler(leadService),
		PartnerHandler:     handlers.NewPartnerHandler(partnerService),
		CompanyHandler:     handlers.NewCompanyHandler(companyService),
		VideoHandler:       handlers.NewVideoHandler(videoService),
		UploadHandler:      handlers.NewUploadHandler(mediaService),
		Session:            session,
		Limiter:            limiter,
		CORSOrigins:        cfg.CORSOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
