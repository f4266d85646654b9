package router_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	discordclient "github.com/you-humble/noventa-support/internal/client/http/discord"
	stripeclient "github.com/you-humble/noventa-support/internal/client/http/stripe"
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
	"github.com/you-humble/noventa-support/platform/logger"
)

const (
	webhookSecret = "whsec_e2e"
	baseURL       = "https://gate.example.com"
	inviteURL     = "https://discord.gg/noventa"
)

var _ = Describe("subscription gate", Ordered, func() {
	var (
		discord *discordFake
		stripeF *stripeFake
		gate    *httptest.Server
		browser *http.Client
	)

	BeforeAll(func() {
		logger.SetNopLogger()

		discord = &discordFake{}
		stripeF = &stripeFake{}

		discordSrv := httptest.NewServer(discord)
		DeferCleanup(discordSrv.Close)
		stripeSrv := httptest.NewServer(stripeF)
		DeferCleanup(stripeSrv.Close)

		target, err := url.Parse(discordSrv.URL)
		Expect(err).NotTo(HaveOccurred())
		discordHTTP := &http.Client{Transport: rewriteTransport{target: target}, Timeout: 2 * time.Second}

		identityClient := discordclient.NewIdentityClient(
			discordclient.NewOAuthConfig("client-1", "secret-1", baseURL+"/api/auth/identity/callback"),
			discordHTTP,
		)

		bot, err := discordgo.New("Bot bot-token")
		Expect(err).NotTo(HaveOccurred())
		bot.Client = discordHTTP
		bot.MaxRestRetries = 0
		community := discordclient.NewCommunityClient(bot, "guild-1", "role-1", "chan-1")

		backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(stripeSrv.URL),
			HTTPClient:        &http.Client{Timeout: 2 * time.Second},
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
			MaxNetworkRetries: stripe.Int64(0),
		})
		api := &client.API{}
		api.Init("sk_test_e2e", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
		payments := stripeclient.NewClient(api, webhookSecret)

		roles := rolesvc.NewRoleService(community, announcesvc.NewAnnounceService(community, nil, 0), 2*time.Second)

		r := router.New(router.Handlers{
			Auth:    authv1.NewAuthHandler(identitysvc.NewIdentityService(identityClient)),
			Payment: paymentv1.NewPaymentHandler(checkoutsvc.NewCheckoutService(payments, "price_e2e", baseURL)),
			Webhook: webhookv1.NewWebhookHandler(webhooksvc.NewWebhookService(payments)),
			Role:    rolev1.NewRoleHandler(roles),
			Page:    page.NewPageHandler(reconcilesvc.NewReconcileService(payments, roles), inviteURL),
		})

		gate = httptest.NewServer(r)
		DeferCleanup(gate.Close)

		browser = &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	})

	BeforeEach(func() {
		discord.reset()
		stripeF.reset()
	})

	get := func(path string) (*http.Response, string) {
		resp, err := browser.Get(gate.URL + path)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp, string(body)
	}

	postWebhook := func(payload []byte, signature string) (*http.Response, string) {
		req, err := http.NewRequest(http.MethodPost, gate.URL+"/api/webhooks/payment", bytes.NewReader(payload))
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Stripe-Signature", signature)

		resp, err := browser.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp, string(body)
	}

	completedEvent := []byte(`{
  "id": "evt_e2e",
  "object": "event",
  "type": "checkout.session.completed",
  "data": {"object": {"id": "cs_test_1", "object": "checkout.session", "client_reference_id": "42", "payment_status": "paid", "status": "complete"}}
}`)

	It("forwards a resolved identity to checkout", func() {
		resp, _ := get("/api/auth/identity/callback?code=good-code")

		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/api/payment/create-checkout?externalIdentityId=42"))
	})

	It("sends failed token exchange back home", func() {
		resp, _ := get("/api/auth/identity/callback?code=bad-code")

		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/?error=identity_token_exchange_failed"))
	})

	It("refuses checkout without identity and never calls the provider", func() {
		resp, _ := get("/api/payment/create-checkout")

		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/?error=missing_identity_id"))
		Expect(stripeF.CreateCalls()).To(BeZero())
	})

	It("refuses checkout for an identity that is not a snowflake", func() {
		resp, _ := get("/api/payment/create-checkout?externalIdentityId=" + url.QueryEscape("777/roles/admin-role?x="))

		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("/?error=missing_identity_id"))
		Expect(stripeF.CreateCalls()).To(BeZero())
	})

	It("creates a subscription checkout for the identity", func() {
		resp, _ := get("/api/payment/create-checkout?externalIdentityId=42")

		Expect(resp.StatusCode).To(Equal(http.StatusFound))
		Expect(resp.Header.Get("Location")).To(Equal("https://checkout.stripe.com/c/pay/cs_test_1"))

		form := stripeF.LastForm()
		Expect(form.Get("mode")).To(Equal("subscription"))
		Expect(form.Get("client_reference_id")).To(Equal("42"))
		Expect(form.Get("line_items[0][price]")).To(Equal("price_e2e"))
		Expect(form.Get("success_url")).To(Equal(baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"))
	})

	It("grants the role when the returning session is paid", func() {
		stripeF.put("cs_test_1", stripeSession{ClientReferenceID: "42", PaymentStatus: "paid", Status: "complete"})

		resp, body := get("/success?session_id=cs_test_1")

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("Payment Successful!"))
		Expect(body).To(ContainSubstring("Your community role has been assigned"))
		Expect(body).To(ContainSubstring(inviteURL))
		Expect(discord.RoleCalls()).To(Equal(1))

		Eventually(discord.Messages).
			WithTimeout(2 * time.Second).
			Should(ContainElement("<@42> has successfully subscribed! 🎉"))
	})

	It("re-attempts the grant on a repeat visit", func() {
		stripeF.put("cs_test_1", stripeSession{ClientReferenceID: "42", PaymentStatus: "paid", Status: "complete"})

		get("/success?session_id=cs_test_1")
		_, body := get("/success?session_id=cs_test_1")

		Expect(body).To(ContainSubstring("Payment Successful!"))
		Expect(discord.RoleCalls()).To(Equal(2))
		Eventually(discord.Messages).WithTimeout(2 * time.Second).Should(HaveLen(2))
	})

	It("tells the user to join first when the member is unknown", func() {
		stripeF.put("cs_test_1", stripeSession{ClientReferenceID: "42", PaymentStatus: "paid", Status: "complete"})
		discord.setRoleStatus(http.StatusNotFound)

		_, body := get("/success?session_id=cs_test_1")

		Expect(body).To(ContainSubstring("Payment Error"))
		Expect(body).To(ContainSubstring("not found in the community"))
		Expect(body).To(ContainSubstring("(42)"))
		Expect(body).NotTo(ContainSubstring(inviteURL))
		Consistently(discord.Messages).WithTimeout(300 * time.Millisecond).Should(BeEmpty())
	})

	It("keeps the raw community error off the return page", func() {
		stripeF.put("cs_test_1", stripeSession{ClientReferenceID: "42", PaymentStatus: "paid", Status: "complete"})
		discord.setRoleStatus(http.StatusInternalServerError)

		_, body := get("/success?session_id=cs_test_1")

		Expect(body).To(ContainSubstring("Payment Error"))
		Expect(body).To(ContainSubstring("community API error"))
		Expect(body).NotTo(ContainSubstring("Missing Permissions"))
		Expect(body).NotTo(ContainSubstring("50013"))
	})

	It("never grants for a path-shaped client reference", func() {
		stripeF.put("cs_test_1", stripeSession{ClientReferenceID: "777/roles/admin-role?x=", PaymentStatus: "paid", Status: "complete"})

		_, body := get("/success?session_id=cs_test_1")

		Expect(body).To(ContainSubstring("Payment Error"))
		Expect(discord.RoleCalls()).To(BeZero())
	})

	It("does not grant while the session is unpaid", func() {
		stripeF.put("cs_test_1", stripeSession{ClientReferenceID: "42", PaymentStatus: "unpaid", Status: "open"})

		_, body := get("/success?session_id=cs_test_1")

		Expect(body).To(ContainSubstring("Payment Processing"))
		Expect(discord.RoleCalls()).To(BeZero())
	})

	It("acknowledges a signed webhook without granting", func() {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   completedEvent,
			Secret:    webhookSecret,
			Timestamp: time.Now(),
		})

		resp, body := postWebhook(completedEvent, signed.Header)

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"received":true}`))
		Expect(discord.RoleCalls()).To(BeZero())
	})

	It("rejects a webhook with a wrong signature", func() {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   completedEvent,
			Secret:    "whsec_someone_else",
			Timestamp: time.Now(),
		})

		resp, body := postWebhook(completedEvent, signed.Header)

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(body).To(ContainSubstring("signature"))
		Expect(discord.RoleCalls()).To(BeZero())
	})

	It("serves the role endpoint for POST only", func() {
		resp, err := browser.Post(gate.URL+"/api/roles", "application/json", strings.NewReader(`{"externalIdentityId":"42"}`))
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(discord.RoleCalls()).To(Equal(1))
		Eventually(discord.Messages).WithTimeout(2 * time.Second).Should(HaveLen(1))

		resp, body := get("/api/roles")
		Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
		Expect(body).To(MatchJSON(`{"success":false,"message":"Method Not Allowed"}`))
	})

	It("rejects a role request whose id would rewrite the community path", func() {
		resp, err := browser.Post(gate.URL+"/api/roles", "application/json",
			strings.NewReader(`{"externalIdentityId":"777/roles/admin-role?x="}`))
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(discord.RoleCalls()).To(BeZero())
	})

	It("reports liveness", func() {
		resp, body := get("/health")

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(Equal("SERVING"))
	})
})
