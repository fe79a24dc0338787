// Package metrics defines and registers all custom Prometheus metrics for
// the devhub API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto,
// which the /metrics endpoint exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devhub"

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "ok", "duplicate" or "rejected" (validation/policy failures)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntitiesVoidedTotal counts successful void transitions.
// Label:
//   - entity: "user", "project" or "comment"
var EntitiesVoidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_voided_total",
		Help:      "Total number of entities soft-deleted, by entity type.",
	},
	[]string{"entity"},
)

// LikeTogglesTotal counts like toggles.
// Label:
//   - action: "liked" or "unliked"
var LikeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_toggles_total",
		Help:      "Total number of project like toggles, by resulting action.",
	},
	[]string{"action"},
)

// ProjectCacheTotal counts project cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProjectCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_cache_total",
		Help:      "Total number of project cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
