package envconfig

import "github.com/caarlos0/env/v11"

type identityEnv struct {
	ClientID     string `env:"DISCORD_CLIENT_ID,required,notEmpty"`
	ClientSecret string `env:"DISCORD_CLIENT_SECRET,required,notEmpty"`
}

type identity struct {
	raw identityEnv
}

func NewIdentityConfig() (*identity, error) {
	var raw identityEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &identity{raw: raw}, nil
}

func (cfg *identity) ClientID() string     { return cfg.raw.ClientID }
func (cfg *identity) ClientSecret() string { return cfg.raw.ClientSecret }
