package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/backend"
	"github.com/vitrine-store/gateway/pkg/cart"
	"github.com/vitrine-store/gateway/pkg/catalog"
	"github.com/vitrine-store/gateway/pkg/checkout"
	"github.com/vitrine-store/gateway/pkg/global"
	redisstore "github.com/vitrine-store/gateway/pkg/redis"
	"github.com/vitrine-store/gateway/pkg/states"
)

var Router *gin.Engine

// Shared service instances used by the handlers below.
var (
	apiClient   *backend.Client
	cartStore   *cart.Store
	checkoutSvc *checkout.Service
	statesSvc   *states.Service
	browsers    *catalog.BrowserSet
)

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	Router = gin.Default()

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     global.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// InitDependencies wires the backend client, the redis cart mirror and the
// services on top of them from environment configuration.
func InitDependencies() {
	client := backend.NewFromEnv()
	mirror := redisstore.NewCartMirror(redisstore.RedisClient())
	store := cart.NewStore(client, mirror)

	setDependencies(client, store, states.NewServiceFromEnv())
}

// setDependencies is split out so tests can swap in a fake backend and an
// in-memory mirror.
func setDependencies(client *backend.Client, store *cart.Store, stateSvc *states.Service) {
	apiClient = client
	cartStore = store
	checkoutSvc = checkout.NewService(client, store)
	statesSvc = stateSvc
	browsers = catalog.NewBrowserSet(client)
}

func InitializeRoutes() {
	Router.Use(SessionMiddleware())

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/products", GetProducts)
		api.GET("/states", GetStates)
		api.GET("/orders/:id", GetOrderDetails)

		auth := api.Group("/auth")
		{
			auth.POST("/login", Login)
			auth.POST("/register", Register)
			auth.POST("/logout", Logout)
			auth.GET("/session", GetSession)
		}

		cartRoutes := api.Group("/cart")
		cartRoutes.Use(RequireSession())
		{
			cartRoutes.GET("", GetCart)
			cartRoutes.POST("/items", AddCartItem)
			cartRoutes.PUT("/items/:id", UpdateCartItem)
			cartRoutes.DELETE("/items/:id", RemoveCartItem)
			cartRoutes.DELETE("", ClearCart)
		}

		api.POST("/checkout", RequireSession(), SubmitOrder)
	}
}
