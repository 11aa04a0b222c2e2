package env

import (
	"net"
	"os"

	"reviewmap_backend/internal/config"
)

const (
	httpHostEnvName   = "HTTP_HOST"
	httpPortEnvName   = "HTTP_PORT"
	corsOriginEnvName = "CORS_ORIGIN"
)

const (
	defaultHost       = "localhost"
	defaultPort       = "8000"
	defaultCORSOrigin = "http://localhost:3000"
)

type httpConfig struct {
	host       string
	port       string
	corsOrigin string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)
	if len(host) == 0 {
		host = defaultHost
	}

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultPort
	}

	corsOrigin := os.Getenv(corsOriginEnvName)
	if len(corsOrigin) == 0 {
		corsOrigin = defaultCORSOrigin
	}

	return &httpConfig{
		host:       host,
		port:       port,
		corsOrigin: corsOrigin,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) CORSOrigin() string {
	return cfg.corsOrigin
}
