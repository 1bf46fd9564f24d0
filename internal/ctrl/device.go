package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceCtrl interface {
	ListDevices(ctx context.Context, uid uuid.UUID) ([]dto.DeviceResponse, error)
	TerminateOtherDevices(ctx context.Context, s dto.SessionInfo) error
	TerminateDevice(ctx context.Context, uid uuid.UUID, deviceID string) error
}

func (c *Controller) ListDevices(ctx context.Context, uid uuid.UUID) ([]dto.DeviceResponse, error) {
	const op = "devices.ListDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	sessions, err := c.repo.ListSessions(ctx, uid)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	res := make([]dto.DeviceResponse, 0, len(sessions))
	for _, s := range sessions {
		res = append(
			res, dto.DeviceResponse{
				IP:             s.IP,
				Title:          s.DeviceLabel,
				LastActiveDate: s.IssuedAt,
				DeviceID:       s.DeviceID,
			},
		)
	}
	return res, nil
}

func (c *Controller) TerminateOtherDevices(ctx context.Context, s dto.SessionInfo) error {
	const op = "devices.TerminateOtherDevices.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.repo.DeleteOtherSessions(ctx, s.UserID, s.DeviceID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

// TerminateDevice deletes a session of the caller. A session owned by another
// user yields ErrForbidden.
func (c *Controller) TerminateDevice(ctx context.Context, uid uuid.UUID, deviceID string) error {
	const op = "devices.TerminateDevice.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	s, err := c.repo.GetSessionByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}

	if s.UserID != uid {
		zap.L().Info(
			"attempt to terminate foreign device",
			zap.String("op", op),
			zap.String("uid", uid.String()),
			zap.String("device", deviceID),
		)
		return ErrForbidden
	}

	if err = c.repo.DeleteSessionByDeviceID(ctx, deviceID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}
