// Package metrics registra los colectores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores. Cada instancia usa su propio registry (sin estado global).
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	stockWrites     *prometheus.CounterVec
}

// New crea y registra los colectores bajo el namespace indicado.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas, por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		stockWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_writes_total",
			Help:      "Escrituras sobre el libro de stock, por operación y resultado.",
		}, []string{"operation", "result"}),
	}
	reg.MustRegister(
		m.requests,
		m.requestDuration,
		m.stockWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStockWrite registra una escritura de stock pedida por HTTP (upsert, delete) y si tuvo éxito.
// Las cascadas de borrado de tiendas y productos no pasan por aquí.
func (m *Metrics) ObserveStockWrite(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.stockWrites.WithLabelValues(operation, result).Inc()
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler devuelve el handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
