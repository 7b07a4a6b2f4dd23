package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Option настраивает HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL задаёт адрес сервера Bot API, например локального telegram-bot-api.
func WithBaseURL(baseURL string) Option {
	return func(c *HTTPClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient подменяет HTTP-клиент.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *HTTPClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout задаёт таймаут одной попытки. 0 отключает таймаут.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.timeout = timeout
	}
}

// WithRateLimit ограничивает частоту запросов. При rps <= 0 ограничение отключено.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRetries задаёт число повторов после первой попытки.
func WithRetries(retries int) Option {
	return func(c *HTTPClient) {
		c.retries = max(retries, 0)
	}
}

// WithBackOff задаёт фабрику интервалов между повторами.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *HTTPClient) {
		if newBackOff != nil {
			c.newBackOff = newBackOff
		}
	}
}

// WithRegisterer регистрирует метрики клиента в reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *HTTPClient) {
		c.metrics = newMetrics(reg)
	}
}

// WithLogger задаёт логгер.
func WithLogger(log *slog.Logger) Option {
	return func(c *HTTPClient) {
		if log != nil {
			c.log = log
		}
	}
}
