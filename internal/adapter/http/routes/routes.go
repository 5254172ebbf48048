package routes

import (
	"log"
	"strconv"

	_ "customer_portal/docs" // This will be auto-generated
	"customer_portal/internal/adapter/http/handlers"
	"customer_portal/internal/infrastructure/config"
	"customer_portal/internal/infrastructure/upstream"
	"customer_portal/internal/usecase"
	"customer_portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the portal API server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.PortalPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	portalLog := logger.New(cfg.ServiceName)

	client, err := upstream.NewCustomerServiceClient(cfg.PortalUpstreamURL, portalLog)
	if err != nil {
		log.Fatalf("Failed to configure upstream client: %v", err.Error())
	}

	dashboardUseCase := usecase.NewDashboardUseCase(client, portalLog)
	profileUseCase := usecase.NewProfileUseCase(client, portalLog)
	historyUseCase := usecase.NewHistoryUseCase(client, portalLog)

	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	historyHandler := handlers.NewHistoryHandler(historyUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, dashboardHandler, profileHandler, historyHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Request-Id") == "" {
			c.Request.Header.Set("X-Request-Id", uuid.NewString())
		}
		c.Writer.Header().Set("X-Request-Id", c.GetHeader("X-Request-Id"))
		c.Next()
	}
}
