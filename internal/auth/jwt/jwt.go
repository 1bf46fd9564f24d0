package jwt

import (
	"context"
	"time"

	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

type Port interface {
	NewAccessToken(ctx context.Context, uid uuid.UUID) (string, error)
	GenPair(ctx context.Context, deviceID string, uid uuid.UUID, prev time.Time) (string, string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
	DecodeUnchecked(tokenStr string) (Claims, error)
}

type Core struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      clock.Clock
	parser     *jwt.Parser
}

type Claims struct {
	UID      uuid.UUID `json:"uid"`
	DeviceID string    `json:"deviceId,omitempty"`
	Kind     Kind      `json:"kind"`
	jwt.RegisteredClaims
}

func New(conf config.Config, clk clock.Clock) *Core {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(clk.Now),
	}
	if conf.Auth.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(conf.Auth.JWT.Issuer))
	}

	return &Core{
		secret:     []byte(conf.Auth.JWT.Secret),
		issuer:     conf.Auth.JWT.Issuer,
		accessTTL:  conf.Auth.JWT.AccessTTL,
		refreshTTL: conf.Auth.JWT.RefreshTTL,
		clock:      clk,
		parser:     jwt.NewParser(opts...),
	}
}

func (c *Core) NewAccessToken(ctx context.Context, uid uuid.UUID) (string, error) {
	const op = "auth.NewAccessToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.sign(
		&Claims{
			UID:              uid,
			Kind:             Access,
			RegisteredClaims: c.registered(c.issueTime(time.Time{}), c.accessTTL),
		},
	)
}

// NewRefreshToken signs a refresh token for the device issued strictly after
// prev. A zero prev places no lower bound.
func (c *Core) NewRefreshToken(ctx context.Context, deviceID string, uid uuid.UUID, prev time.Time) (string, error) {
	const op = "auth.NewRefreshToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.sign(
		&Claims{
			UID:              uid,
			DeviceID:         deviceID,
			Kind:             Refresh,
			RegisteredClaims: c.registered(c.issueTime(prev), c.refreshTTL),
		},
	)
}

// GenPair mints an access/refresh pair for the device. The refresh token's
// issue time is strictly after prev, so a rotation within the same second as
// the previous issue still supersedes the old token.
func (c *Core) GenPair(ctx context.Context, deviceID string, uid uuid.UUID, prev time.Time) (string, string, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.NewAccessToken(ctx, uid)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	refresh, err := c.NewRefreshToken(ctx, deviceID, uid, prev)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	return access, refresh, nil
}

// ParseClaims verifies the signature, algorithm, issuer and expiry of the
// token. Any failure is reported as ErrInvalidToken.
func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := c.parser.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return Claims{}, ErrInvalidToken
	}

	if !token.Valid || claims.IssuedAt == nil {
		zap.L().Debug(
			"Token is invalid",
			zap.String("op", op),
		)

		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

// DecodeUnchecked reads the claims without verifying the signature. It must
// only be used on tokens minted by this process.
func (c *Core) DecodeUnchecked(tokenStr string) (Claims, error) {
	claims := Claims{}
	if _, _, err := c.parser.ParseUnverified(tokenStr, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}

	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

func (c *Core) registered(iat time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(iat),
		Issuer:    c.issuer,
	}
}

// issueTime returns the current time at token resolution, moved past prev
// when needed.
func (c *Core) issueTime(prev time.Time) time.Time {
	now := c.clock.Now().Truncate(time.Second)
	if !prev.IsZero() && !now.After(prev) {
		return prev.Truncate(time.Second).Add(time.Second)
	}
	return now
}

func (c *Core) sign(claims *Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}
