package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	PublicBaseURL() string
	UpstreamTimeout() time.Duration
	AnnounceTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Identity interface {
	ClientID() string
	ClientSecret() string
}

type Payment interface {
	SecretKey() string
	PriceID() string
	WebhookSecret() string
}

type Community interface {
	BotToken() string
	ServerID() string
	RoleID() string
	NotificationChannelID() string
	InviteURL() string
}

type Telegram interface {
	Enabled() bool
	BotToken() string
	StaffChatID() int64
}
