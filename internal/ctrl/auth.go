package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/bloggers-auth/internal/auth/jwt"
	"github.com/JMURv/bloggers-auth/internal/auth/throttle"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/dto"
	md "github.com/JMURv/bloggers-auth/internal/models"
	metrics "github.com/JMURv/bloggers-auth/internal/observability/metrics/prometheus"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const userCacheKey = "user:%v"

type authCtrl interface {
	AllowAttempt(ctx context.Context, ip string, route throttle.Route) (bool, error)
	CheckCredentials(ctx context.Context, loginOrEmail, password string) (*md.User, error)
	Login(ctx context.Context, d *dto.DeviceRequest, req *dto.LoginRequest) (dto.TokenPair, error)
	AuthorizeRefresh(ctx context.Context, token string) (dto.SessionInfo, error)
	Refresh(ctx context.Context, d *dto.DeviceRequest, s dto.SessionInfo) (dto.TokenPair, error)
	Logout(ctx context.Context, s dto.SessionInfo) error
	GetMe(ctx context.Context, uid uuid.UUID) (*dto.MeResponse, error)
}

type userRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByLogin(ctx context.Context, login string) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	GetUserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*md.User, error)
	GetUserByCode(ctx context.Context, code string) (*md.User, error)
	CreateUser(ctx context.Context, u *md.User) error
	UpdateConfirmationCode(ctx context.Context, email, code string, expiresAt time.Time) error
	ConfirmEmail(ctx context.Context, userID uuid.UUID, code string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, code, password string) error
}

type sessionRepo interface {
	CreateSession(ctx context.Context, s *md.Session) error
	GetSession(ctx context.Context, deviceID string, userID uuid.UUID) (*md.Session, error)
	GetSessionByDeviceID(ctx context.Context, deviceID string) (*md.Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]md.Session, error)
	ReplaceSession(ctx context.Context, s *md.Session, prevIssuedAt time.Time) error
	DeleteSession(ctx context.Context, deviceID string, userID uuid.UUID) error
	DeleteSessionByDeviceID(ctx context.Context, deviceID string) error
	DeleteOtherSessions(ctx context.Context, userID uuid.UUID, keepDeviceID string) error
}

func (c *Controller) AllowAttempt(ctx context.Context, ip string, route throttle.Route) (bool, error) {
	return c.throttle.Allow(ctx, ip, route)
}

// CheckCredentials returns ErrUnauthorized for an unknown account, an
// unconfirmed email and a wrong password alike.
func (c *Controller) CheckCredentials(ctx context.Context, loginOrEmail, password string) (*md.User, error) {
	const op = "auth.CheckCredentials.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByLoginOrEmail(ctx, loginOrEmail)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			if hash, hErr := c.absentHash(); hErr == nil {
				_ = c.au.ComparePasswords(hash, password)
			}
			return nil, ErrUnauthorized
		}
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	err = c.au.ComparePasswords(u.Password, password)
	if !u.IsEmailVerified {
		zap.L().Debug("login with unconfirmed email", zap.String("op", op), zap.String("uid", u.ID.String()))
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, ErrUnauthorized
	}

	return u, nil
}

func (c *Controller) Login(ctx context.Context, d *dto.DeviceRequest, req *dto.LoginRequest) (dto.TokenPair, error) {
	const op = "auth.Login.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var res dto.TokenPair
	u, err := c.CheckCredentials(ctx, req.LoginOrEmail, req.Password)
	if err != nil {
		return res, err
	}

	deviceID := uuid.NewString()
	access, refresh, err := c.au.GenPair(ctx, deviceID, u.ID, time.Time{})
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return res, err
	}

	claims, err := c.au.DecodeUnchecked(refresh)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to decode issued token", zap.String("op", op), zap.Error(err))
		return res, err
	}

	err = c.repo.CreateSession(
		ctx, &md.Session{
			DeviceID:    deviceID,
			UserID:      u.ID,
			IssuedAt:    claims.IssuedAt.Time,
			ExpiresAt:   claims.ExpiresAt.Time,
			IP:          d.IP,
			DeviceLabel: d.UA,
		},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create session", zap.String("op", op), zap.Error(err))
		return res, err
	}

	res.Access = access
	res.Refresh = refresh
	res.RefreshExpiresAt = claims.ExpiresAt.Time
	return res, nil
}

// AuthorizeRefresh runs every check a refresh token must pass before it may
// rotate, terminate or inspect sessions. Only a token issued at or after the
// session's last rotation is accepted.
func (c *Controller) AuthorizeRefresh(ctx context.Context, token string) (dto.SessionInfo, error) {
	const op = "auth.AuthorizeRefresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var res dto.SessionInfo
	if token == "" {
		return res, ErrUnauthorized
	}

	claims, err := c.au.ParseClaims(ctx, token)
	if err != nil || claims.Kind != jwt.Refresh || claims.DeviceID == "" {
		return res, ErrUnauthorized
	}

	if _, err = c.repo.GetUserByID(ctx, claims.UID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return res, ErrUnauthorized
		}
		span.SetTag(config.ErrorSpanTag, true)
		return res, err
	}

	s, err := c.repo.GetSession(ctx, claims.DeviceID, claims.UID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return res, ErrUnauthorized
		}
		span.SetTag(config.ErrorSpanTag, true)
		return res, err
	}

	if claims.IssuedAt.Time.Before(s.IssuedAt) {
		metrics.SessionRotation(metrics.RotationRejected)
		zap.L().Info(
			"superseded refresh token presented",
			zap.String("op", op),
			zap.String("uid", claims.UID.String()),
			zap.String("device", claims.DeviceID),
		)
		return res, ErrUnauthorized
	}

	res.UserID = s.UserID
	res.DeviceID = s.DeviceID
	res.IssuedAt = s.IssuedAt
	return res, nil
}

// Refresh rotates an authorized session. When another request rotated the
// same session first, the caller gets ErrUnauthorized.
func (c *Controller) Refresh(ctx context.Context, d *dto.DeviceRequest, s dto.SessionInfo) (dto.TokenPair, error) {
	const op = "auth.Refresh.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var res dto.TokenPair
	access, refresh, err := c.au.GenPair(ctx, s.DeviceID, s.UserID, s.IssuedAt)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return res, err
	}

	claims, err := c.au.DecodeUnchecked(refresh)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to decode issued token", zap.String("op", op), zap.Error(err))
		return res, err
	}

	err = c.repo.ReplaceSession(
		ctx, &md.Session{
			DeviceID:    s.DeviceID,
			UserID:      s.UserID,
			IssuedAt:    claims.IssuedAt.Time,
			ExpiresAt:   claims.ExpiresAt.Time,
			IP:          d.IP,
			DeviceLabel: d.UA,
		}, s.IssuedAt,
	)
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			metrics.SessionRotation(metrics.RotationConflict)
			zap.L().Info(
				"concurrent session rotation",
				zap.String("op", op),
				zap.String("uid", s.UserID.String()),
				zap.String("device", s.DeviceID),
			)
			return res, ErrUnauthorized
		}
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to replace session", zap.String("op", op), zap.Error(err))
		return res, err
	}

	metrics.SessionRotation(metrics.RotationRotated)
	res.Access = access
	res.Refresh = refresh
	res.RefreshExpiresAt = claims.ExpiresAt.Time
	return res, nil
}

func (c *Controller) Logout(ctx context.Context, s dto.SessionInfo) error {
	const op = "auth.Logout.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteSession(ctx, s.DeviceID, s.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUnauthorized
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

func (c *Controller) GetMe(ctx context.Context, uid uuid.UUID) (*dto.MeResponse, error) {
	const op = "auth.GetMe.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.MeResponse{}
	cacheKey := fmt.Sprintf(userCacheKey, uid)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	u, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	res := &dto.MeResponse{
		Email:  u.Email,
		Login:  u.Login,
		UserID: u.ID,
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}
