package router

import (
	"fmt"
	"strings"

	"github.com/kitoblarda/internal/cache"
	"github.com/kitoblarda/internal/config"
	publichandlers "github.com/kitoblarda/internal/http/handlers/public"
	staffhandlers "github.com/kitoblarda/internal/http/handlers/staff"
	"github.com/kitoblarda/internal/logger"
	"github.com/kitoblarda/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all storefront and staff
// routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	staffHandler := staffhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "kb"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded files (payment screenshots, book covers).
	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", "./"+strings.TrimPrefix(uploadDir, "./"))

	apiV1 := r.Group("/api/v1")
	{
		// Storefront, no account required.
		apiV1.GET("/books", publicHandler.ListBooks)
		apiV1.GET("/books/:slug", publicHandler.GetBookBySlug)
		apiV1.GET("/categories", publicHandler.ListCategories)
		apiV1.GET("/payment-card", publicHandler.GetPaymentCard)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("phone")), publicHandler.Login)
		}

		// The cart is session scoped so guests can fill it before
		// signing in. The sid cookie is the only identity needed here.
		cart := apiV1.Group("")
		cart.Use(SessionMiddleware(cfg.Session))
		{
			cart.GET("/cart", publicHandler.GetCart)
			cart.GET("/cart/count", publicHandler.GetCartCount)
			cart.POST("/cart/items", publicHandler.AddCartItem)
			cart.PUT("/cart/items/:book_id", publicHandler.UpdateCartItem)
			cart.DELETE("/cart/items/:book_id", publicHandler.DeleteCartItem)
		}

		// Customer routes. Checkout needs both the session (cart) and
		// the signed-in user (order owner).
		user := apiV1.Group("")
		user.Use(SessionMiddleware(cfg.Session))
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/payment", publicHandler.SubmitPayment)
		}

		staff := apiV1.Group("/staff")
		staff.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		staff.Use(StaffRequiredMiddleware())
		{
			staff.GET("/orders", staffHandler.ListOrders)
			staff.GET("/orders/:id", staffHandler.GetOrder)
			staff.GET("/orders/:id/status-logs", staffHandler.ListOrderStatusLogs)
			staff.POST("/orders/:id/confirm", staffHandler.ConfirmOrder)
			staff.POST("/orders/:id/cancel", staffHandler.CancelOrder)
			staff.POST("/orders/:id/ready", staffHandler.MarkOrderReady)
			staff.POST("/orders/:id/delivered", staffHandler.MarkOrderDelivered)
			staff.POST("/orders/transition", staffHandler.TransitionOrders)

			staff.GET("/books", staffHandler.ListBooks)
			staff.POST("/books", staffHandler.CreateBook)
			staff.PUT("/books/:id", staffHandler.UpdateBook)
			staff.DELETE("/books/:id", staffHandler.DeleteBook)
			staff.POST("/books/image", staffHandler.UploadBookImage)

			staff.GET("/categories", staffHandler.ListCategories)
			staff.POST("/categories", staffHandler.CreateCategory)
			staff.PUT("/categories/:id", staffHandler.UpdateCategory)
			staff.DELETE("/categories/:id", staffHandler.DeleteCategory)

			staff.GET("/payment-setting", staffHandler.GetPaymentSetting)
			staff.PUT("/payment-setting", staffHandler.ReplacePaymentSetting)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
