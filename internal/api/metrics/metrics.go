// Package metrics defines all custom Prometheus metrics for the Saber Viver
// mentorship API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "saberviver"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts new account registrations.
// Label:
//   - role: "mentor" or "learner"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registrations, by role.",
	},
	[]string{"role"},
)

// BookingsCreatedTotal counts successfully created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsCanceledTotal counts bookings transitioned to canceled.
var BookingsCanceledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_canceled_total",
		Help:      "Total number of bookings canceled.",
	},
)

// BookingProcessingDuration measures booking submission end-to-end, including
// the simulated processing delay.
// Label:
//   - result: "created" or "rejected"
var BookingProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_processing_duration_seconds",
		Help:      "Duration of booking submissions from receipt to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
