package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/dto"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type registrationCtrl interface {
	Register(ctx context.Context, req *dto.RegistrationRequest) error
	ConfirmRegistration(ctx context.Context, code string) error
	ResendConfirmation(ctx context.Context, email string) error
}

// Register stores an unconfirmed account and mails its confirmation code.
// The account is kept when delivery fails so the code can be resent.
func (c *Controller) Register(ctx context.Context, req *dto.RegistrationRequest) error {
	const op = "registration.Register.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.ensureFree(ctx, req.Login, req.Email); err != nil {
		return err
	}

	hash, err := c.au.HashPassword(req.Password)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to hash password", zap.String("op", op), zap.Error(err))
		return err
	}

	now := c.clock.Now()
	code := uuid.NewString()
	expiresAt := now.Add(config.ConfirmationCodeDuration)
	u := &md.User{
		ID:               uuid.New(),
		Login:            req.Login,
		Email:            req.Email,
		Password:         hash,
		ConfirmationCode: &code,
		CodeExpiresAt:    &expiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = c.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			if err = c.ensureFree(ctx, req.Login, req.Email); err != nil {
				return err
			}
			return invalid("login", ErrLoginTaken)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if err = c.mail.SendConfirmationCode(ctx, u.Email, code); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

// ensureFree reports the first taken unique field as a validation error.
func (c *Controller) ensureFree(ctx context.Context, login, email string) error {
	if _, err := c.repo.GetUserByLogin(ctx, login); err == nil {
		return invalid("login", ErrLoginTaken)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	if _, err := c.repo.GetUserByEmail(ctx, email); err == nil {
		return invalid("email", ErrEmailTaken)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	return nil
}

// ConfirmRegistration consumes a registration code. Checks run in a fixed
// order: unknown code, already consumed, expired.
func (c *Controller) ConfirmRegistration(ctx context.Context, code string) error {
	const op = "registration.ConfirmRegistration.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("code", ErrCodeInvalid)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if u.IsEmailVerified {
		return invalid("code", ErrCodeAlreadyApplied)
	}

	if u.CodeExpiresAt == nil || u.CodeExpiresAt.Before(c.clock.Now()) {
		return invalid("code", ErrCodeExpired)
	}

	if err = c.repo.ConfirmEmail(ctx, u.ID, code); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return invalid("code", ErrCodeAlreadyApplied)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

// ResendConfirmation overwrites the code slot of an unconfirmed account and
// mails the new code. A pending recovery code is invalidated as well.
func (c *Controller) ResendConfirmation(ctx context.Context, email string) error {
	const op = "registration.ResendConfirmation.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("email", ErrEmailNotExist)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if u.IsEmailVerified {
		return invalid("email", ErrEmailAlreadyConfirmed)
	}

	code, err := c.regenerateCode(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("email", ErrEmailNotExist)
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if err = c.mail.SendConfirmationCode(ctx, email, code); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

func (c *Controller) regenerateCode(ctx context.Context, email string) (string, error) {
	code := uuid.NewString()
	if err := c.repo.UpdateConfirmationCode(ctx, email, code, c.clock.Now().Add(config.ConfirmationCodeDuration)); err != nil {
		return "", err
	}
	return code, nil
}
