package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunduk_events_received_total",
			Help: "Total raw group events received by type.",
		},
		[]string{"type"},
	)
	EventsDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunduk_events_discarded_total",
			Help: "Total events discarded before delivery by type and reason.",
		},
		[]string{"type", "reason"},
	)
	LookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunduk_lookup_failures_total",
			Help: "Total remote lookups that collapsed to not-found by API method.",
		},
		[]string{"method"},
	)
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunduk_notifications_sent_total",
			Help: "Total notifications delivered by channel.",
		},
		[]string{"channel"},
	)
	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunduk_notification_failures_total",
			Help: "Total notification delivery failures by channel.",
		},
		[]string{"channel"},
	)
)
