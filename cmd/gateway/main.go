package main

import (
	"log"
	"strconv"

	_ "github.com/joho/godotenv/autoload"

	"customer_portal/internal/gateway"
	"customer_portal/internal/infrastructure/config"
	"customer_portal/pkg/logger"
)

func main() {
	cfg := config.Load()
	gatewayLog := logger.New("gateway")

	proxy, err := gateway.NewProxy(cfg.CustomerServiceURL, gatewayLog)
	if err != nil {
		log.Fatalf("Failed to configure upstream target: %v", err.Error())
	}

	router := gateway.NewRouter(proxy, gatewayLog)

	gatewayLog.Info("gateway listening",
		logger.Int("port", cfg.GatewayPort),
		logger.String("upstream", cfg.CustomerServiceURL))

	if err := router.Run(":" + strconv.Itoa(cfg.GatewayPort)); err != nil {
		log.Fatalf("Failed to startup the gateway: %v", err.Error())
	}
}
