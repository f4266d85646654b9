package envconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpServerEnv struct {
	Host string `env:"HTTP_HOST,required"`
	Port int    `env:"HTTP_PORT,required"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT,required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,required"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL,required,notEmpty"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	AnnounceTimeout time.Duration `env:"ANNOUNCE_TIMEOUT" envDefault:"15s"`
}

type httpServer struct {
	raw httpServerEnv
}

func NewHTTPServerConfig() (*httpServer, error) {
	var raw httpServerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &httpServer{raw: raw}, nil
}

func (cfg *httpServer) Host() string { return cfg.raw.Host }
func (cfg *httpServer) Port() int    { return cfg.raw.Port }
func (cfg *httpServer) Address() string {
	return fmt.Sprintf("%s:%d", cfg.Host(), cfg.Port())
}

func (cfg *httpServer) ReadTimeout() time.Duration {
	return cfg.raw.ReadTimeout
}

func (cfg *httpServer) ShutdownTimeout() time.Duration {
	return cfg.raw.ShutdownTimeout
}

// PublicBaseURL is the externally reachable origin without a trailing slash.
func (cfg *httpServer) PublicBaseURL() string {
	return strings.TrimRight(cfg.raw.PublicBaseURL, "/")
}

func (cfg *httpServer) UpstreamTimeout() time.Duration {
	return cfg.raw.UpstreamTimeout
}

func (cfg *httpServer) AnnounceTimeout() time.Duration {
	return cfg.raw.AnnounceTimeout
}
