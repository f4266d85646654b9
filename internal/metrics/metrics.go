package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "noventa_support"

var (
	RoleGrants = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_grants_total",
		Help:      "Role grant attempts by outcome.",
	}, []string{"outcome"})

	Announcements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_total",
		Help:      "Subscription announcements by sink and result.",
	}, []string{"sink", "result"})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Verified payment webhook events by type.",
	}, []string{"type"})

	WebhookRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_rejections_total",
		Help:      "Payment webhook requests rejected before processing.",
	})

	Completions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completions_total",
		Help:      "Return-page reconciliations by resulting state.",
	}, []string{"state"})
)
