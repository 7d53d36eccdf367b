package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contactUC "apen/internal/application/contact/usecases"
	contentUC "apen/internal/application/content/usecases"
	"apen/internal/infrastructure/config"
	"apen/internal/infrastructure/email"
	"apen/internal/infrastructure/repository"
	"apen/internal/interfaces/http/handlers"
	"apen/internal/interfaces/http/middleware"
	"apen/internal/shared/logger"
	"apen/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	contactHandler *handlers.ContactHandler
	contentHandler *handlers.ContentHandler
	healthHandler  *handlers.HealthHandler
	rateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies wired.
// redisClient may be nil, in which case the contact route runs without
// rate limiting.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	mailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUser,
		Password: cfg.Email.SMTPPassword,
	})
	renderer := email.NewRenderer()

	settings := contactUC.MailSettings{
		SMTPUser:        cfg.Email.SMTPUser,
		SMTPPassword:    cfg.Email.SMTPPassword,
		FromAddress:     cfg.Email.FromAddress,
		ProviderAddress: cfg.Email.ProviderAddress,
	}

	var store contactUC.SubmissionStore
	if db != nil {
		store = repository.NewSubmissionRepository(db)
	}

	submitUC := contactUC.NewSubmitRequestUseCase(settings, renderer, mailer, store, log)
	contactHandler := handlers.NewContactHandler(submitUC, log)

	postRepo := repository.NewPostRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	md := markdown.NewService()

	contentHandler := handlers.NewContentHandler(
		contentUC.NewListPostsUseCase(postRepo, log),
		contentUC.NewGetPostUseCase(postRepo, md, log),
		contentUC.NewListServicesUseCase(serviceRepo, log),
		contentUC.NewGetServiceUseCase(serviceRepo, md, log),
		log,
	)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.Requests, window)
	}

	return &Router{
		engine:         engine,
		contactHandler: contactHandler,
		contentHandler: contentHandler,
		healthHandler:  handlers.NewHealthHandler(),
		rateLimiter:    rateLimiter,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.Check)

	api := r.engine.Group("/api")
	{
		if r.rateLimiter != nil {
			api.POST("/contact", r.rateLimiter.Limit(), r.contactHandler.Submit)
		} else {
			api.POST("/contact", r.contactHandler.Submit)
		}

		api.GET("/posts", r.contentHandler.ListPosts)
		api.GET("/posts/:slug", r.contentHandler.GetPost)
		api.GET("/services", r.contentHandler.ListServices)
		api.GET("/services/:slug", r.contentHandler.GetService)
	}
}

// Engine exposes the underlying Gin engine for the HTTP server
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
