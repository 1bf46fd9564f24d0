package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/bloggers-auth/internal/auth/jwt"
	"github.com/JMURv/bloggers-auth/internal/auth/throttle"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/ctrl"
	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/JMURv/bloggers-auth/internal/hdl"
	"github.com/JMURv/bloggers-auth/internal/hdl/http/utils"
	metrics "github.com/JMURv/bloggers-auth/internal/observability/metrics/prometheus"
	"github.com/go-chi/chi/v5"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type tokenParser interface {
	ParseClaims(ctx context.Context, tokenStr string) (jwt.Claims, error)
}

type attemptChecker interface {
	AllowAttempt(ctx context.Context, ip string, route throttle.Route) (bool, error)
}

type refreshAuthorizer interface {
	AuthorizeRefresh(ctx context.Context, token string) (dto.SessionInfo, error)
}

// Auth accepts only an access token sent as "Authorization: Bearer <token>".
func Auth(au tokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
				if !ok || token == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil || claims.Kind != jwt.Access {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// Refresh authorizes the request by the refresh token cookie and stores the
// accepted session in the context.
func Refresh(c refreshAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				var token string
				if cookie, err := r.Cookie(config.RefreshCookieName); err == nil {
					token = cookie.Value
				}

				s, err := c.AuthorizeRefresh(r.Context(), token)
				if err != nil {
					if errors.Is(err, ctrl.ErrUnauthorized) {
						utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
						return
					}
					zap.L().Error("failed to authorize refresh token", zap.Error(err))
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}

				ctx := context.WithValue(r.Context(), config.SessionKey, s)
				ctx = context.WithValue(ctx, config.UidKey, s.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// Attempts rejects the request with an empty 429 when the client exhausted
// its attempts for route. An allowed request is counted before it is served.
func Attempts(c attemptChecker, route throttle.Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ok, err := c.AllowAttempt(r.Context(), utils.ClientIP(r), route)
				if err != nil {
					zap.L().Error("failed to check attempts", zap.String("route", string(route)), zap.Error(err))
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}

				if !ok {
					utils.StatusResponse(w, http.StatusTooManyRequests)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ua := r.UserAgent()
			if ua == "" {
				ua = config.UnknownDeviceValue
			}

			ctx := context.WithValue(r.Context(), config.IpKey, utils.ClientIP(r))
			ctx = context.WithValue(ctx, config.UaKey, ua)
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				op = fmt.Sprintf("%s %s", r.Method, rctx.RoutePattern())
			}
			metrics.ObserveRequest(r.Context(), time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
