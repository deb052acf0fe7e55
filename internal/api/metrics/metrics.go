// Package metrics defines and registers all custom Prometheus metrics for the
// GradeFresh API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gradefresh"

// ── Classification metrics ────────────────────────────────────────────────────

// PredictionsTotal counts images that completed classification.
// Label:
//   - status: the resulting quality status ("excellent", "good", "poor", "unknown")
var PredictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of images successfully classified, by quality status.",
	},
	[]string{"status"},
)

// PredictionErrorsTotal counts classification attempts that failed.
// Label:
//   - reason: short failure description (e.g. "model_error", "empty_output")
var PredictionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_errors_total",
		Help:      "Total number of failed classification attempts.",
	},
	[]string{"reason"},
)

// PredictionDuration measures end-to-end model inference plus grading time.
// Label:
//   - status: the resulting quality status
var PredictionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of a single image classification, model call included.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// VerdictCacheTotal counts verdict cache decisions.
// Label:
//   - result: "hit" (cached verdict returned) or "miss" (model invoked)
var VerdictCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verdict_cache_total",
		Help:      "Total number of verdict cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts created user accounts.
// Label:
//   - role: the role assigned at registration
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered users, by role.",
	},
	[]string{"role"},
)
