package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/application/alert/services"
	"github.com/polyforma/qualitrack/internal/application/notification"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	domainNotification "github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/infrastructure/auth"
	"github.com/polyforma/qualitrack/internal/infrastructure/cache"
	"github.com/polyforma/qualitrack/internal/infrastructure/config"
	"github.com/polyforma/qualitrack/internal/infrastructure/document"
	"github.com/polyforma/qualitrack/internal/infrastructure/email"
	"github.com/polyforma/qualitrack/internal/interfaces/http/middleware"
	"github.com/polyforma/qualitrack/internal/shared/db"
	"github.com/polyforma/qualitrack/internal/shared/id"
	"github.com/polyforma/qualitrack/internal/shared/locale"
	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/services/markdown"
)

// Container owns every long-lived component of the API process and wires
// them together. Shutdown releases what it opened.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	txManager  *db.TransactionManager
	catalog    catalog.Reader
	documents  *document.CertificateDocuments
	dispatcher *notification.Dispatcher
	trigger    *services.AlertTrigger
	threshold  decimal.Decimal
	certCodes  *id.CodeGenerator
	ncCodes    *id.CodeGenerator

	jwtService     *auth.JWTService
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: storage, caches and outbound channels
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: domain services shared by several use cases
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 3: use cases
	c.initUseCases()

	// Section 4: handlers and middlewares
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.repos = newRepositories(c.db)
	c.txManager = db.NewTransactionManager(c.db)
	c.catalog = c.repos.catalog

	if c.cfg.Redis.Enabled() {
		client, err := cache.NewClient(ctx, c.cfg.Redis.GetAddr(), c.cfg.Redis.Password, c.cfg.Redis.DB)
		if err != nil {
			// the database is still authoritative
			c.log.Warnw("redis unavailable, product cache and rate limiting disabled", "addr", c.cfg.Redis.GetAddr(), "error", err)
		} else {
			c.redis = client
			c.catalog = cache.NewCachedProductReader(c.repos.catalog, client, c.cfg.Redis.ProductCacheTTL(), c.log)
		}
	}

	store, err := c.newDocumentStore(ctx)
	if err != nil {
		return err
	}
	renderer := document.NewPDFRenderer(c.cfg.Quality.CompanyName, locale.NewFormatter(c.cfg.Quality.Locale))
	c.documents = document.NewCertificateDocuments(renderer, store, c.log)

	return nil
}

func (c *Container) newDocumentStore(ctx context.Context) (document.Store, error) {
	switch c.cfg.Storage.Driver {
	case "minio":
		store, err := document.NewMinIOStore(ctx, c.cfg.Storage.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to init minio document store: %w", err)
		}
		c.log.Infow("certificate documents stored in minio", "bucket", c.cfg.Storage.MinIO.Bucket)
		return store, nil
	default:
		store, err := document.NewLocalStore(c.cfg.Storage.Local.BaseDir)
		if err != nil {
			return nil, fmt.Errorf("failed to init local document store: %w", err)
		}
		c.log.Infow("certificate documents stored on disk", "base_dir", c.cfg.Storage.Local.BaseDir)
		return store, nil
	}
}

func (c *Container) initServices() error {
	threshold, err := c.cfg.Quality.DefaultThreshold()
	if err != nil {
		return err
	}
	c.threshold = threshold

	c.dispatcher = notification.NewDispatcher(
		c.newNotifier(),
		c.repos.directory,
		c.repos.alert,
		c.cfg.Quality.NotificationTimeout(),
		c.log,
	)
	c.trigger = services.NewAlertTrigger(c.repos.alert, c.dispatcher, threshold, c.log)
	c.certCodes = id.NewCertificateCodeGenerator(c.cfg.Quality.CertificateCodePrefix)
	c.ncCodes = id.NewNonConformityCodeGenerator(c.cfg.Quality.NonConformityCodePrefix)

	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer)
	return nil
}

// newNotifier returns nil when no SMTP host is configured. The dispatcher
// then reports every notification as not queued.
func (c *Container) newNotifier() domainNotification.Notifier {
	if c.cfg.Email.SMTPHost == "" {
		c.log.Warnw("email not configured, notifications disabled")
		return nil
	}
	return email.NewSMTPNotifier(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
	}, markdown.NewRenderer(), locale.NewFormatter(c.cfg.Quality.Locale))
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// JWTService exposes the token issuer for the CLI.
func (c *Container) JWTService() *auth.JWTService {
	return c.jwtService
}

func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
