package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JMURv/bloggers-auth/internal/ctrl"
	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/JMURv/bloggers-auth/internal/hdl"
	"github.com/JMURv/bloggers-auth/internal/hdl/http/utils"
	"go.uber.org/zap"
)

// retryAfter is sent with 503 responses caused by failed notification delivery.
const retryAfter = 10

// errResponse maps controller errors to HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func errResponse(w http.ResponseWriter, op string, err error) {
	var vErr *ctrl.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.FieldErrResponse(w, http.StatusBadRequest, dto.FieldError{Message: vErr.Err.Error(), Field: vErr.Field})
	case errors.Is(err, ctrl.ErrUnauthorized):
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
	case errors.Is(err, ctrl.ErrPasswordReused):
		utils.ErrResponse(w, http.StatusUnauthorized, err)
	case errors.Is(err, ctrl.ErrForbidden):
		utils.ErrResponse(w, http.StatusForbidden, err)
	case errors.Is(err, ctrl.ErrNotFound):
		utils.ErrResponse(w, http.StatusNotFound, err)
	case errors.Is(err, ctrl.ErrDeliveryFailed):
		zap.L().Warn("notification delivery failed", zap.String("op", op), zap.Error(err))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		utils.ErrResponse(w, http.StatusServiceUnavailable, ctrl.ErrDeliveryFailed)
	default:
		zap.L().Error("request failed", zap.String("op", op), zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
	}
}
