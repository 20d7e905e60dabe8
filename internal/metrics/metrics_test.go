package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	// Сбрасываем метрики перед тестом
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	method := "POST"
	path := "/slots/:slotID/book"
	status := "201"
	duration := 0.5

	RecordHTTPRequest(method, path, status, duration)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(method, path, status))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("confirmed")
	RecordBooking("confirmed")
	RecordBooking("waitlisted")

	confirmed := testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed"))
	waitlisted := testutil.ToFloat64(BookingsTotal.WithLabelValues("waitlisted"))

	assert.Equal(t, float64(2), confirmed)
	assert.Equal(t, float64(1), waitlisted)
}

func TestRecordBookingCancellation(t *testing.T) {
	// Создаем новый счетчик для теста
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_booking_cancellations_total_test",
			Help: "Total number of booking cancellations",
		},
	)

	// Временно подменяем глобальную переменную
	oldCounter := BookingCancellationsTotal
	BookingCancellationsTotal = testCounter
	defer func() { BookingCancellationsTotal = oldCounter }()

	RecordBookingCancellation()
	RecordBookingCancellation()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(2), count)
}

func TestRecordSeatClaimRejection(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_seat_claim_rejections_total_test",
			Help: "Seat claims rejected",
		},
	)

	oldCounter := SeatClaimRejectionsTotal
	SeatClaimRejectionsTotal = testCounter
	defer func() { SeatClaimRejectionsTotal = oldCounter }()

	RecordSeatClaimRejection()
	RecordSeatClaimRejection()
	RecordSeatClaimRejection()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(3), count)
}

func TestRecordSuggestion(t *testing.T) {
	SuggestionsServedTotal.Reset()

	RecordSuggestion(true)
	RecordSuggestion(true)
	RecordSuggestion(false)

	found := testutil.ToFloat64(SuggestionsServedTotal.WithLabelValues("yes"))
	notFound := testutil.ToFloat64(SuggestionsServedTotal.WithLabelValues("no"))

	assert.Equal(t, float64(2), found)
	assert.Equal(t, float64(1), notFound)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "success")
	RecordEmail("booking_confirmation", "failed")
	RecordEmail("waitlist_notice", "success")

	confirmSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success"))
	confirmFailed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "failed"))
	waitlistSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("waitlist_notice", "success"))

	assert.Equal(t, float64(1), confirmSuccess)
	assert.Equal(t, float64(1), confirmFailed)
	assert.Equal(t, float64(1), waitlistSuccess)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

func TestMetricsIntegration(t *testing.T) {
	// Имитируем реальный сценарий использования
	HTTPRequestsTotal.Reset()
	BookingsTotal.Reset()
	SuggestionsServedTotal.Reset()
	EmailsSentTotal.Reset()

	RecordHTTPRequest("POST", "/slots/:slotID/book", "201", 0.25)
	RecordBooking("waitlisted")
	RecordSuggestion(true)
	RecordEmail("waitlist_notice", "success")

	httpCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/slots/:slotID/book", "201"))
	bookingCount := testutil.ToFloat64(BookingsTotal.WithLabelValues("waitlisted"))
	suggestionCount := testutil.ToFloat64(SuggestionsServedTotal.WithLabelValues("yes"))
	emailCount := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("waitlist_notice", "success"))

	assert.Equal(t, float64(1), httpCount)
	assert.Equal(t, float64(1), bookingCount)
	assert.Equal(t, float64(1), suggestionCount)
	assert.Equal(t, float64(1), emailCount)
}
