// Package metrics defines and registers all custom Prometheus metrics for the
// forum API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package load
// and are exposed at GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forum"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "not_found", "throttled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations by assigned role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, labelled by assigned role.",
	},
	[]string{"role"},
)

// TokenValidationsTotal counts bearer token validations in the auth middleware.
// Label:
//   - result: "ok", "invalid", "expired", "unknown_subject", "username_mismatch"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, labelled by result.",
	},
	[]string{"result"},
)

// AuditEventsTotal counts auth events handed to the audit dispatcher.
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of auth audit events enqueued, labelled by type.",
	},
	[]string{"type"},
)
