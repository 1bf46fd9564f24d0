package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type recoveryCtrl interface {
	RecoverPassword(ctx context.Context, email string) error
	SetNewPassword(ctx context.Context, req *dto.NewPasswordRequest) error
}

// RecoverPassword mails a recovery code. An unknown email is reported as
// success so that accounts cannot be enumerated.
func (c *Controller) RecoverPassword(ctx context.Context, email string) error {
	const op = "recovery.RecoverPassword.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	code, err := c.regenerateCode(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			zap.L().Debug("recovery requested for unknown email", zap.String("op", op))
			return nil
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if err = c.mail.SendRecoveryCode(ctx, email, code); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

// SetNewPassword replaces the password of the account holding the recovery
// code. The code is not marked consumed and stays usable until it expires or
// is regenerated.
func (c *Controller) SetNewPassword(ctx context.Context, req *dto.NewPasswordRequest) error {
	const op = "recovery.SetNewPassword.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByCode(ctx, req.RecoveryCode)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("recoveryCode", ErrCodeInvalid)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if u.CodeExpiresAt == nil || u.CodeExpiresAt.Before(c.clock.Now()) {
		return invalid("recoveryCode", ErrCodeExpired)
	}

	if err = c.au.ComparePasswords(u.Password, req.NewPassword); err == nil {
		return ErrPasswordReused
	}

	hash, err := c.au.HashPassword(req.NewPassword)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to hash password", zap.String("op", op), zap.Error(err))
		return err
	}

	if err = c.repo.UpdatePassword(ctx, u.ID, req.RecoveryCode, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("recoveryCode", ErrCodeInvalid)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}
