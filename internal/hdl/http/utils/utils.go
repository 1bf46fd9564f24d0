package utils

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/JMURv/bloggers-auth/internal/hdl"
	"github.com/JMURv/bloggers-auth/internal/hdl/validation"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	SuccessResponse(
		w, statusCode, &ErrorsResponse{
			Errors: []string{err.Error()},
		},
	)
}

func FieldErrResponse(w http.ResponseWriter, statusCode int, errs ...dto.FieldError) {
	SuccessResponse(
		w, statusCode, &dto.FieldErrorsResponse{
			ErrorsMessages: errs,
		},
	)
}

// ParseAndValidate decodes the JSON body into req and validates it. On failure
// the 400 response is already written.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		zap.L().Debug(hdl.ErrDecodeRequest.Error(), zap.Error(err))
		FieldErrResponse(w, http.StatusBadRequest, dto.FieldError{Message: hdl.ErrDecodeRequest.Error()})
		return false
	}

	if errs := validation.Struct(req); len(errs) > 0 {
		FieldErrResponse(w, http.StatusBadRequest, errs...)
		return false
	}
	return true
}

// ClientIP returns the request address without its port. Proxy headers are
// expected to be resolved into RemoteAddr beforehand.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return config.UnknownDeviceValue
	}
	return host
}

func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	ip, ok := ctx.Value(config.IpKey).(string)
	if !ok {
		return dto.DeviceRequest{}, false
	}

	ua, ok := ctx.Value(config.UaKey).(string)
	if !ok {
		return dto.DeviceRequest{}, false
	}

	return dto.DeviceRequest{IP: ip, UA: ua}, true
}

func SessionFromContext(ctx context.Context) (dto.SessionInfo, bool) {
	s, ok := ctx.Value(config.SessionKey).(dto.SessionInfo)
	return s, ok
}

func UIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(config.UidKey).(uuid.UUID)
	return uid, ok
}

func SetRefreshCookie(w http.ResponseWriter, token string, expiresAt time.Time, secure bool) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    token,
			Expires:  expiresAt,
			HttpOnly: true,
			Secure:   secure,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)
}

func ClearRefreshCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)
}
