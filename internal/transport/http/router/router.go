package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/you-humble/noventa-support/internal/transport/http/health"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateCheckout(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Payment(w http.ResponseWriter, r *http.Request)
}

type RoleHandler interface {
	GrantRole(w http.ResponseWriter, r *http.Request)
	MethodNotAllowed(w http.ResponseWriter, r *http.Request)
}

type PageHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	Success(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	Auth    AuthHandler
	Payment PaymentHandler
	Webhook WebhookHandler
	Role    RoleHandler
	Page    PageHandler
}

func New(h Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Get("/", h.Page.Home)
	r.Get("/success", h.Page.Success)

	r.Route("/api", func(r chi.Router) {
		r.Get("/auth/identity/login", h.Auth.Login)
		r.Get("/auth/identity/callback", h.Auth.Callback)

		r.Get("/payment/create-checkout", h.Payment.CreateCheckout)

		r.Post("/webhooks/payment", h.Webhook.Payment)

		r.HandleFunc("/roles", h.Role.MethodNotAllowed)
		r.Post("/roles", h.Role.GrantRole)
	})

	r.HandleFunc("/health", health.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
