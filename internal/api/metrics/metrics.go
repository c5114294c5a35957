// Package metrics defines and registers all custom Prometheus metrics for the
// back office API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics use promauto and register with the default registry at package init;
// the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthDecisionsTotal counts access-guard resolutions on protected routes.
// Label:
//   - outcome: "allowed", "unauthenticated", "invalid_token", "pending", or "error"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of access guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// UsersRegisteredTotal counts self-service registrations. Accounts start
// inactive, so this is not the number of usable accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of client self-registrations accepted.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notifications written by the async
// dispatcher workers.
// Label:
//   - kind: notification kind (e.g. "BUDGET_UPDATED")
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notifications successfully written, by kind.",
	},
	[]string{"kind"},
)

// NotificationsFailedTotal counts notification writes that failed. Failures
// are logged and dropped; callers never observe them.
// Label:
//   - kind: notification kind
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification writes that failed, by kind.",
	},
	[]string{"kind"},
)

// NotificationsQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
