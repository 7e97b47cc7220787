// Package metrics defines and registers all custom Prometheus metrics for the
// storefront service. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

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

// SignupsTotal counts signup attempts.
// Label:
//   - outcome: "success" or "failure"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"outcome"},
)

// PanelTogglesTotal counts modal panel toggles.
// Label:
//   - panel: "login", "signup", "password-reset" or "feedback"
var PanelTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panel_toggles_total",
		Help:      "Total number of panel visibility toggles, by panel.",
	},
	[]string{"panel"},
)

// ProfileRequestsTotal counts profile store operations.
// Labels:
//   - operation: "fetch" or "update"
//   - outcome:   "success", "failure" or "no_token"
var ProfileRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_requests_total",
		Help:      "Total number of profile fetch/update operations, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// FeedbackSubmissionsTotal counts feedback form submissions.
// Label:
//   - outcome: "success" or "failure"
var FeedbackSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_submissions_total",
		Help:      "Total number of feedback submissions, by outcome.",
	},
	[]string{"outcome"},
)

// BackendRequestDuration measures one backend round trip per observation.
// Labels:
//   - path:    the backend endpoint path
//   - outcome: "success", "failure" (HTTP error) or "error" (transport)
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the marketplace backend.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"path", "outcome"},
)
