package observability

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SchedulesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raillink_schedules_generated_total",
		Help: "Schedule instances persisted by the admin save workflow.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raillink_bookings_created_total",
		Help: "Bookings created by passengers.",
	})

	RefundsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "raillink_refunds_processed_total",
		Help: "Refund decisions by outcome.",
	}, []string{"outcome"})

	BroadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "raillink_schedule_broadcast_failures_total",
		Help: "Schedule events that could not be published.",
	})
)

// ServeMetrics exposes /metrics on its own listener so the Fiber app
// stays untouched. Blocking; run in a goroutine.
func ServeMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("✅ Metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERROR] metrics server: %v", err)
	}
}
