package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/JMURv/bloggers-auth/docs"
	"github.com/JMURv/bloggers-auth/internal/auth"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/ctrl"
	mid "github.com/JMURv/bloggers-auth/internal/hdl/http/middleware"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router       *chi.Mux
	au           auth.Core
	srv          *http.Server
	ctrl         ctrl.AppCtrl
	secureCookie bool
}

func New(au auth.Core, ctrl ctrl.AppCtrl, conf config.AuthConfig) *Handler {
	h := &Handler{
		Router:       chi.NewRouter(),
		au:           au,
		ctrl:         ctrl,
		secureCookie: conf.SecureCookie,
	}

	h.Router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterRoutes()
	h.RegisterAuthRoutes()
	h.RegisterDeviceRoutes()
	return h
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.Router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
