package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	discordclient "github.com/you-humble/noventa-support/internal/client/http/discord"
	stripeclient "github.com/you-humble/noventa-support/internal/client/http/stripe"
	tgclient "github.com/you-humble/noventa-support/internal/client/http/telegram"
	"github.com/you-humble/noventa-support/internal/config"
	announcesvc "github.com/you-humble/noventa-support/internal/service/announce"
	checkoutsvc "github.com/you-humble/noventa-support/internal/service/checkout"
	identitysvc "github.com/you-humble/noventa-support/internal/service/identity"
	reconcilesvc "github.com/you-humble/noventa-support/internal/service/reconcile"
	rolesvc "github.com/you-humble/noventa-support/internal/service/role"
	webhooksvc "github.com/you-humble/noventa-support/internal/service/webhook"
	authv1 "github.com/you-humble/noventa-support/internal/transport/http/auth/v1"
	"github.com/you-humble/noventa-support/internal/transport/http/page"
	paymentv1 "github.com/you-humble/noventa-support/internal/transport/http/payment/v1"
	rolev1 "github.com/you-humble/noventa-support/internal/transport/http/role/v1"
	webhookv1 "github.com/you-humble/noventa-support/internal/transport/http/webhook/v1"
	"github.com/you-humble/noventa-support/internal/transport/http/router"
	"github.com/you-humble/noventa-support/platform/closer"
)

const callbackPath = "/api/auth/identity/callback"

type RoleService interface {
	rolev1.RoleService
	reconcilesvc.RoleGranter
}

type di struct {
	httpClient *http.Client

	identityClient identitysvc.IdentityProvider
	botSession     *discordgo.Session
	community      rolesvc.CommunityClient
	channel        announcesvc.ChannelSender

	stripeClient *stripeclient.Client

	tgBot    *bot.Bot
	tgClient announcesvc.StaffSender

	identityService  authv1.IdentityService
	checkoutService  paymentv1.CheckoutService
	webhookService   webhookv1.WebhookService
	announceService  rolesvc.Announcer
	roleService      RoleService
	reconcileService page.Reconciler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

// HTTPClient is shared by every outbound integration.
func (d *di) HTTPClient(_ context.Context) *http.Client {
	if d.httpClient == nil {
		d.httpClient = &http.Client{Timeout: config.C().Server.UpstreamTimeout()}

		closer.AddNamed("Upstream HTTP client", func(ctx context.Context) error {
			d.httpClient.CloseIdleConnections()
			return nil
		})
	}

	return d.httpClient
}

func (d *di) IdentityClient(ctx context.Context) identitysvc.IdentityProvider {
	if d.identityClient == nil {
		cfg := config.C()

		d.identityClient = discordclient.NewIdentityClient(
			discordclient.NewOAuthConfig(
				cfg.Identity.ClientID(),
				cfg.Identity.ClientSecret(),
				cfg.Server.PublicBaseURL()+callbackPath,
			),
			d.HTTPClient(ctx),
		)
	}

	return d.identityClient
}

func (d *di) BotSession(ctx context.Context) *discordgo.Session {
	if d.botSession == nil {
		s, err := discordgo.New("Bot " + config.C().Community.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create discord session: %s\n", err.Error()))
		}
		s.Client = d.HTTPClient(ctx)
		s.MaxRestRetries = 1

		closer.AddNamed("Discord session", func(ctx context.Context) error {
			return s.Close()
		})

		d.botSession = s
	}

	return d.botSession
}

func (d *di) communityClient(ctx context.Context) {
	cfg := config.C().Community

	c := discordclient.NewCommunityClient(
		d.BotSession(ctx),
		cfg.ServerID(),
		cfg.RoleID(),
		cfg.NotificationChannelID(),
	)
	d.community = c
	d.channel = c
}

func (d *di) CommunityClient(ctx context.Context) rolesvc.CommunityClient {
	if d.community == nil {
		d.communityClient(ctx)
	}

	return d.community
}

func (d *di) ChannelSender(ctx context.Context) announcesvc.ChannelSender {
	if d.channel == nil {
		d.communityClient(ctx)
	}

	return d.channel
}

func (d *di) StripeClient(ctx context.Context) *stripeclient.Client {
	if d.stripeClient == nil {
		cfg := config.C().Payment

		backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			HTTPClient:        d.HTTPClient(ctx),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelWarn},
			MaxNetworkRetries: stripe.Int64(1),
		})

		api := &client.API{}
		api.Init(cfg.SecretKey(), &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

		d.stripeClient = stripeclient.NewClient(api, cfg.WebhookSecret())
	}

	return d.stripeClient
}

func (d *di) TelegramBot(ctx context.Context) *bot.Bot {
	if d.tgBot == nil {
		b, err := bot.New(
			config.C().Telegram.BotToken(),
			bot.WithHTTPClient(config.C().Server.UpstreamTimeout(), d.HTTPClient(ctx)),
			bot.WithSkipGetMe(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}

		d.tgBot = b
	}

	return d.tgBot
}

// TelegramClient is nil when the staff mirror is not configured.
func (d *di) TelegramClient(ctx context.Context) announcesvc.StaffSender {
	if d.tgClient == nil && config.C().Telegram.Enabled() {
		d.tgClient = tgclient.NewClient(d.TelegramBot(ctx))
	}

	return d.tgClient
}

func (d *di) IdentityService(ctx context.Context) authv1.IdentityService {
	if d.identityService == nil {
		d.identityService = identitysvc.NewIdentityService(d.IdentityClient(ctx))
	}

	return d.identityService
}

func (d *di) CheckoutService(ctx context.Context) paymentv1.CheckoutService {
	if d.checkoutService == nil {
		cfg := config.C()

		d.checkoutService = checkoutsvc.NewCheckoutService(
			d.StripeClient(ctx),
			cfg.Payment.PriceID(),
			cfg.Server.PublicBaseURL(),
		)
	}

	return d.checkoutService
}

func (d *di) WebhookService(ctx context.Context) webhookv1.WebhookService {
	if d.webhookService == nil {
		d.webhookService = webhooksvc.NewWebhookService(d.StripeClient(ctx))
	}

	return d.webhookService
}

func (d *di) AnnounceService(ctx context.Context) rolesvc.Announcer {
	if d.announceService == nil {
		d.announceService = announcesvc.NewAnnounceService(
			d.ChannelSender(ctx),
			d.TelegramClient(ctx),
			config.C().Telegram.StaffChatID(),
		)
	}

	return d.announceService
}

func (d *di) RoleService(ctx context.Context) RoleService {
	if d.roleService == nil {
		d.roleService = rolesvc.NewRoleService(
			d.CommunityClient(ctx),
			d.AnnounceService(ctx),
			config.C().Server.AnnounceTimeout(),
		)
	}

	return d.roleService
}

func (d *di) ReconcileService(ctx context.Context) page.Reconciler {
	if d.reconcileService == nil {
		d.reconcileService = reconcilesvc.NewReconcileService(d.StripeClient(ctx), d.RoleService(ctx))
	}

	return d.reconcileService
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = router.New(router.Handlers{
			Auth:    authv1.NewAuthHandler(d.IdentityService(ctx)),
			Payment: paymentv1.NewPaymentHandler(d.CheckoutService(ctx)),
			Webhook: webhookv1.NewWebhookHandler(d.WebhookService(ctx)),
			Role:    rolev1.NewRoleHandler(d.RoleService(ctx)),
			Page:    page.NewPageHandler(d.ReconcileService(ctx), config.C().Community.InviteURL()),
		})
	}

	return d.router
}
