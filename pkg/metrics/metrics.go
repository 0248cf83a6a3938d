package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	checkoutTransitions *prometheus.CounterVec
	ordersCreated       *prometheus.CounterVec
	captures            *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном registerer (для тестов - отдельный registry)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		checkoutTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkout_transitions_total",
			Help:        "Checkout wizard transitions by target step",
			ConstLabels: constLabels,
		}, []string{"step"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_orders_created_total",
			Help:        "Provider orders requested from the backend",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		captures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_captures_total",
			Help:        "Payment captures by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.checkoutTransitions,
		m.ordersCreated,
		m.captures,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// CheckoutTransition фиксирует переход визарда на шаг step
func (m *Metrics) CheckoutTransition(step string) {
	m.checkoutTransitions.WithLabelValues(step).Inc()
}

// OrderCreated фиксирует результат создания заказа у провайдера
func (m *Metrics) OrderCreated(ok bool) {
	m.ordersCreated.WithLabelValues(outcome(ok)).Inc()
}

// Capture фиксирует результат capture платежа
func (m *Metrics) Capture(ok bool) {
	m.captures.WithLabelValues(outcome(ok)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failed"
}
