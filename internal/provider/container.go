package provider

import (
	"time"

	"github.com/kitoblarda/internal/cache"
	"github.com/kitoblarda/internal/config"
	"github.com/kitoblarda/internal/logger"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/queue"
	"github.com/kitoblarda/internal/repository"
	"github.com/kitoblarda/internal/service"
	"github.com/kitoblarda/internal/session"
)

// Container wires repositories and services together.
type Container struct {
	Config       *config.Config
	QueueClient  *queue.Client
	SessionStore session.Store

	// Repositories
	UserRepo           repository.UserRepository
	CategoryRepo       repository.CategoryRepository
	BookRepo           repository.BookRepository
	OrderRepo          repository.OrderRepository
	PaymentSettingRepo repository.PaymentSettingRepository
	StatusLogRepo      repository.OrderStatusLogRepository

	// Services
	AuthService   *service.AuthService
	CartService   *service.CartService
	OrderService  *service.OrderService
	BookService   *service.BookService
	UploadService *service.UploadService
}

// NewContainer builds the dependency graph.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initSessionStore()
	c.initRepositories()
	c.initServices()

	return c
}

// initSessionStore picks the cart backend. Redis carries sessions
// across instances; the in-memory store covers dev setups without it.
func (c *Container) initSessionStore() {
	ttl := time.Duration(c.Config.Session.TTLHours) * time.Hour
	if cache.Enabled() {
		c.SessionStore = session.NewRedisStore(cache.Client(), c.Config.Redis.Prefix, ttl)
		return
	}
	logger.Warnw("provider_session_store_memory_fallback",
		"reason", "redis disabled, carts will not survive restarts",
	)
	c.SessionStore = session.NewMemoryStore()
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.BookRepo = repository.NewBookRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentSettingRepo = repository.NewPaymentSettingRepository(db)
	c.StatusLogRepo = repository.NewOrderStatusLogRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.CartService = service.NewCartService(c.SessionStore, c.BookRepo)
	c.BookService = service.NewBookService(c.BookRepo, c.CategoryRepo, c.PaymentSettingRepo)

	var enqueuer service.StatusLogEnqueuer
	if c.QueueClient != nil && c.QueueClient.Enabled() {
		enqueuer = c.QueueClient
	}
	c.OrderService = service.NewOrderService(
		models.DB,
		c.OrderRepo,
		c.BookRepo,
		c.StatusLogRepo,
		c.CartService,
		enqueuer,
	)
}
