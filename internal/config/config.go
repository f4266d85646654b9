package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/noventa-support/internal/config/env"
)

var cfg *config

type config struct {
	Server    Server
	Logger    Logger
	Identity  Identity
	Payment   Payment
	Community Community
	Telegram  Telegram
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	identityCfg, err := envconfig.NewIdentityConfig()
	if err != nil {
		return fmt.Errorf("%s Identity: %w", op, err)
	}

	paymentCfg, err := envconfig.NewPaymentConfig()
	if err != nil {
		return fmt.Errorf("%s Payment: %w", op, err)
	}

	communityCfg, err := envconfig.NewCommunityConfig()
	if err != nil {
		return fmt.Errorf("%s Community: %w", op, err)
	}

	telegramCfg, err := envconfig.NewTelegramConfig()
	if err != nil {
		return fmt.Errorf("%s Telegram: %w", op, err)
	}

	cfg = &config{
		Server:    serverCfg,
		Logger:    loggerCfg,
		Identity:  identityCfg,
		Payment:   paymentCfg,
		Community: communityCfg,
		Telegram:  telegramCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
