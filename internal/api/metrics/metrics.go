// Package metrics defines and registers all custom Prometheus metrics for the
// admin console API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_console"

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditProcessedTotal counts audit events that were persisted successfully.
// Labels:
//   - entity_kind: "user" or "project"
//   - action: "created", "updated", or "deleted"
var AuditProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_processed_total",
		Help:      "Total number of audit events successfully recorded.",
	},
	[]string{"entity_kind", "action"},
)

// AuditErrorsTotal counts audit events that failed processing.
// Label:
//   - entity_kind: "user" or "project"
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_errors_total",
		Help:      "Total number of audit events that failed processing.",
	},
	[]string{"entity_kind"},
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts entity mutations accepted by the API.
// Labels:
//   - entity_kind: "user" or "project"
//   - action: "created", "updated", or "deleted"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of entity mutations, by entity kind and action.",
	},
	[]string{"entity_kind", "action"},
)

// IdempotentReplaysTotal counts creates answered from a remembered
// idempotency key instead of inserting a new entity.
// Label:
//   - entity_kind: "user" or "project"
var IdempotentReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests replayed via Idempotency-Key.",
	},
	[]string{"entity_kind"},
)
