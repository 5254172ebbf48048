package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string

	PortalPort  int
	GatewayPort int

	// CustomerServiceURL is the address the gateway forwards to.
	CustomerServiceURL string
	// PortalUpstreamURL is the customer-scoped base the portal reads
	// through, normally the gateway's customer prefix.
	PortalUpstreamURL string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "customer-portal"))
	cfg.PortalPort = cast.ToInt(getOrReturnDefault("PORTAL_PORT", 8081))
	cfg.GatewayPort = cast.ToInt(getOrReturnDefault("GATEWAY_PORT", 8080))
	cfg.CustomerServiceURL = cast.ToString(getOrReturnDefault("CUSTOMER_SERVICE", "http://localhost:8082"))
	cfg.PortalUpstreamURL = cast.ToString(getOrReturnDefault("PORTAL_UPSTREAM", "http://localhost:8080/api/customer"))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultValue
}
