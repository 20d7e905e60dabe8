package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymslot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_bookings_total",
			Help: "Total number of booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	ConflictAutoCancelsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_conflict_auto_cancels_total",
			Help: "Bookings auto-cancelled because a newer request overlapped them",
		},
	)

	SeatClaimRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_seat_claim_rejections_total",
			Help: "Seat claims rejected because the slot had no seats left",
		},
	)

	SuggestionsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_suggestions_served_total",
			Help: "Nearest-slot suggestions computed for waitlisted bookings",
		},
		[]string{"found"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymslot_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordConflictAutoCancel() {
	ConflictAutoCancelsTotal.Inc()
}

func RecordSeatClaimRejection() {
	SeatClaimRejectionsTotal.Inc()
}

func RecordSuggestion(found bool) {
	label := "no"
	if found {
		label = "yes"
	}
	SuggestionsServedTotal.WithLabelValues(label).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
