package envconfig

import "github.com/caarlos0/env/v11"

// Both variables are optional; the staff mirror is off unless both are set.
type telegramEnv struct {
	BotToken    string `env:"TELEGRAM_BOT_TOKEN"`
	StaffChatID int64  `env:"TELEGRAM_STAFF_CHAT_ID"`
}

type telegram struct {
	raw telegramEnv
}

func NewTelegramConfig() (*telegram, error) {
	var raw telegramEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &telegram{raw: raw}, nil
}

func (cfg *telegram) Enabled() bool {
	return cfg.raw.BotToken != "" && cfg.raw.StaffChatID != 0
}

func (cfg *telegram) BotToken() string   { return cfg.raw.BotToken }
func (cfg *telegram) StaffChatID() int64 { return cfg.raw.StaffChatID }
