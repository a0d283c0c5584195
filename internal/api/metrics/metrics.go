// Package metrics defines and registers all custom Prometheus metrics for the
// admin API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry via promauto
// at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gototop"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "inactive", or "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts section-gate denials.
// Label:
//   - section: the section the request attempted to reach
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by the section gate.",
	},
	[]string{"section"},
)

// LeadsCreatedTotal counts stored leads.
// Label:
//   - source: the reported lead source (e.g. "form", "manual")
var LeadsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads created, by source.",
	},
	[]string{"source"},
)

// ActivityQueueDepth tracks the number of audit entries waiting in each
// recorder worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of audit entries pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)
