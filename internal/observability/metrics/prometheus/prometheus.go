package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uber/jaeger-client-go"
	"go.uber.org/zap"
)

var SrvMetrics = pm.NewServerMetrics(
	pm.WithServerHandlingTimeHistogram(
		pm.WithHistogramBuckets([]float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6, 9, 20, 30, 60, 90, 120}),
	),
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "Duration of handled requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"code", "op"},
)

var throttledAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_throttled_attempts_total",
		Help: "Attempts rejected by the per-route attempt limiter",
	},
	[]string{"route"},
)

var sessionRotations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_session_rotations_total",
		Help: "Refresh token rotations by outcome",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(requestDuration, throttledAttempts, sessionRotations, SrvMetrics)
}

type Server struct {
	srv *http.Server
}

func New(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%v", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start(ctx context.Context) {
	go func() {
		zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("Metrics server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Debug("Error shutting down metrics server", zap.Error(err))
	}
}

func ObserveRequest(ctx context.Context, d time.Duration, status int, op string) {
	obs := requestDuration.WithLabelValues(strconv.Itoa(status), op)
	if ex := Exemplar(ctx); ex != nil {
		if eo, ok := obs.(prometheus.ExemplarObserver); ok {
			eo.ObserveWithExemplar(d.Seconds(), ex)
			return
		}
	}
	obs.Observe(d.Seconds())
}

func ThrottledAttempt(route string) {
	throttledAttempts.WithLabelValues(route).Inc()
}

const (
	RotationRotated  = "rotated"
	RotationRejected = "rejected"
	RotationConflict = "conflict"
)

// SessionRotation counts refresh outcomes by result.
func SessionRotation(result string) {
	sessionRotations.WithLabelValues(result).Inc()
}

// Exemplar attaches the Jaeger trace id of the current span to histogram
// observations.
func Exemplar(ctx context.Context) prometheus.Labels {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return nil
	}

	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		return prometheus.Labels{"traceID": sc.TraceID().String()}
	}
	return nil
}
