package client

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "botapi"

// Исходы вызова для метки outcome.
const (
	outcomeOK        = "ok"
	outcomeAPIError  = "api_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
)

type metrics struct {
	requests *prometheus.CounterVec
	retries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics создаёт коллекторы и регистрирует их в reg. Если коллектор уже
// зарегистрирован другим клиентом, используется существующий.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Bot API calls by method and outcome.",
		}, []string{"method", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "client",
			Name:      "retries_total",
			Help:      "Bot API call attempts that were retried.",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Bot API call latency including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if reg == nil {
		return m
	}

	m.requests = register(reg, m.requests)
	m.retries = register(reg, m.retries)
	m.duration = register(reg, m.duration)

	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}
