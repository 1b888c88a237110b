package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crime_analysis_http_requests_total",
		Help: "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crime_analysis_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	alertEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crime_analysis_alert_evaluations_total",
		Help: "Alert evaluations by result (matched, empty, duplicate, locked, error).",
	}, []string{"result"})

	notificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crime_analysis_alert_notifications_created_total",
		Help: "Alert notifications written to the database.",
	})

	webhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crime_analysis_webhook_deliveries_total",
		Help: "Outbound webhook deliveries by outcome.",
	}, []string{"outcome"})
)

// Результаты оценки подписки
const (
	EvaluationMatched   = "matched"
	EvaluationEmpty     = "empty"
	EvaluationDuplicate = "duplicate"
	EvaluationLocked    = "locked"
	EvaluationError     = "error"
)

// ObserveEvaluation учитывает одну оценку подписки
func ObserveEvaluation(result string) {
	alertEvaluations.WithLabelValues(result).Inc()
}

// NotificationCreated учитывает созданное уведомление
func NotificationCreated() {
	notificationsCreated.Inc()
}

// ObserveWebhookDelivery учитывает исход доставки вебхука (delivered, failed, skipped)
func ObserveWebhookDelivery(outcome string) {
	webhookDeliveries.WithLabelValues(outcome).Inc()
}

// Middleware считает запросы и их длительность по шаблону маршрута
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики в формате Prometheus
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
