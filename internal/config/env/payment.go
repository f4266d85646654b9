package envconfig

import "github.com/caarlos0/env/v11"

type paymentEnv struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY,required,notEmpty"`
	PriceID       string `env:"STRIPE_PRICE_ID,required,notEmpty"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET,required,notEmpty"`
}

type payment struct {
	raw paymentEnv
}

func NewPaymentConfig() (*payment, error) {
	var raw paymentEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &payment{raw: raw}, nil
}

func (cfg *payment) SecretKey() string     { return cfg.raw.SecretKey }
func (cfg *payment) PriceID() string       { return cfg.raw.PriceID }
func (cfg *payment) WebhookSecret() string { return cfg.raw.WebhookSecret }
