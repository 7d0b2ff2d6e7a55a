package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slotdesk",
			Name:      "booking_created_total",
			Help:      "Count of booking create attempts by outcome.",
		},
		[]string{"status"},
	)

	bookingCanceled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slotdesk",
			Name:      "booking_canceled_total",
			Help:      "Count of bookings canceled.",
		},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slotdesk",
			Name:      "booking_deleted_total",
			Help:      "Count of bookings hard-deleted by admins.",
		},
	)

	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slotdesk",
			Name:      "login_attempts_total",
			Help:      "Count of login attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingCanceled, bookingDeleted, loginAttempts)
	})
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingCanceled() {
	bookingCanceled.Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

func IncLoginAttempt(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}
