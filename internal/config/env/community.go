package envconfig

import "github.com/caarlos0/env/v11"

type communityEnv struct {
	BotToken              string `env:"DISCORD_BOT_TOKEN,required,notEmpty"`
	ServerID              string `env:"DISCORD_SERVER_ID,required,notEmpty"`
	RoleID                string `env:"DISCORD_SUBSCRIBER_ROLE_ID,required,notEmpty"`
	NotificationChannelID string `env:"DISCORD_NOTIFICATION_CHANNEL_ID,required,notEmpty"`
	InviteURL             string `env:"DISCORD_INVITE_URL" envDefault:"#"`
}

type community struct {
	raw communityEnv
}

func NewCommunityConfig() (*community, error) {
	var raw communityEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &community{raw: raw}, nil
}

func (cfg *community) BotToken() string              { return cfg.raw.BotToken }
func (cfg *community) ServerID() string              { return cfg.raw.ServerID }
func (cfg *community) RoleID() string                { return cfg.raw.RoleID }
func (cfg *community) NotificationChannelID() string { return cfg.raw.NotificationChannelID }
func (cfg *community) InviteURL() string             { return cfg.raw.InviteURL }
