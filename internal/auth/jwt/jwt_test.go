package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestCore(clk clock.Clock) *Core {
	conf := config.Config{}
	conf.Auth.JWT = config.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "test",
		AccessTTL:  10 * time.Second,
		RefreshTTL: 20 * time.Second,
	}
	return New(conf, clk)
}

func TestCore_NewAccessToken(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := newTestCore(clk)
	ctx := context.Background()
	uid := uuid.New()

	token, err := c.NewAccessToken(ctx, uid)
	require.NoError(t, err)

	claims, err := c.ParseClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, Access, claims.Kind)
	assert.Empty(t, claims.DeviceID)
	assert.Equal(t, testStart, claims.IssuedAt.Time.UTC())
	assert.Equal(t, testStart.Add(10*time.Second), claims.ExpiresAt.Time.UTC())
}

func TestCore_NewRefreshToken(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := newTestCore(clk)
	ctx := context.Background()
	uid := uuid.New()

	token, err := c.NewRefreshToken(ctx, "device", uid, time.Time{})
	require.NoError(t, err)

	claims, err := c.ParseClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, Refresh, claims.Kind)
	assert.Equal(t, "device", claims.DeviceID)
	assert.Equal(t, testStart, claims.IssuedAt.Time.UTC())
	assert.Equal(t, testStart.Add(20*time.Second), claims.ExpiresAt.Time.UTC())

	token, err = c.NewRefreshToken(ctx, "device", uid, testStart)
	require.NoError(t, err)
	claims, err = c.ParseClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(time.Second), claims.IssuedAt.Time.UTC())
}

func TestCore_ParseClaims(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	tests := []struct {
		name    string
		token   func(c *Core, clk *clock.Mock) string
		wantErr bool
	}{
		{
			name: "Valid",
			token: func(c *Core, clk *clock.Mock) string {
				_, token, _ := c.GenPair(ctx, "device", uid, time.Time{})
				return token
			},
		},
		{
			name: "Expired",
			token: func(c *Core, clk *clock.Mock) string {
				token, _ := c.NewAccessToken(ctx, uid)
				clk.Advance(11 * time.Second)
				return token
			},
			wantErr: true,
		},
		{
			name: "ExpiresExactlyNow",
			token: func(c *Core, clk *clock.Mock) string {
				token, _ := c.NewAccessToken(ctx, uid)
				clk.Advance(10 * time.Second)
				return token
			},
			wantErr: true,
		},
		{
			name: "WrongSecret",
			token: func(c *Core, clk *clock.Mock) string {
				token, _ := jwt.NewWithClaims(
					jwt.SigningMethodHS256, &Claims{
						UID:  uid,
						Kind: Access,
						RegisteredClaims: jwt.RegisteredClaims{
							IssuedAt:  jwt.NewNumericDate(clk.Now()),
							ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Minute)),
							Issuer:    "test",
						},
					},
				).SignedString([]byte("other-secret"))
				return token
			},
			wantErr: true,
		},
		{
			name: "WrongIssuer",
			token: func(c *Core, clk *clock.Mock) string {
				token, _ := jwt.NewWithClaims(
					jwt.SigningMethodHS256, &Claims{
						UID:  uid,
						Kind: Access,
						RegisteredClaims: jwt.RegisteredClaims{
							IssuedAt:  jwt.NewNumericDate(clk.Now()),
							ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Minute)),
							Issuer:    "someone-else",
						},
					},
				).SignedString([]byte("test-secret"))
				return token
			},
			wantErr: true,
		},
		{
			name: "NoneAlgorithm",
			token: func(c *Core, clk *clock.Mock) string {
				token, _ := jwt.NewWithClaims(
					jwt.SigningMethodNone, &Claims{
						UID:  uid,
						Kind: Access,
						RegisteredClaims: jwt.RegisteredClaims{
							IssuedAt:  jwt.NewNumericDate(clk.Now()),
							ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Minute)),
							Issuer:    "test",
						},
					},
				).SignedString(jwt.UnsafeAllowNoneSignatureType)
				return token
			},
			wantErr: true,
		},
		{
			name: "Garbage",
			token: func(c *Core, clk *clock.Mock) string {
				return "not-a-token"
			},
			wantErr: true,
		},
		{
			name: "Empty",
			token: func(c *Core, clk *clock.Mock) string {
				return ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewMock(testStart)
			c := newTestCore(clk)

			claims, err := c.ParseClaims(ctx, tt.token(c, clk))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Equal(t, Claims{}, claims)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, uid, claims.UID)
		})
	}
}

func TestCore_ParseClaimsIsIdempotent(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := newTestCore(clk)
	ctx := context.Background()

	token, err := c.NewAccessToken(ctx, uuid.New())
	require.NoError(t, err)

	first, err := c.ParseClaims(ctx, token)
	require.NoError(t, err)
	second, err := c.ParseClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCore_GenPair(t *testing.T) {
	clk := clock.NewMock(testStart.Add(300 * time.Millisecond))
	c := newTestCore(clk)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("FreshLogin", func(t *testing.T) {
		access, refresh, err := c.GenPair(ctx, "device-1", uid, time.Time{})
		require.NoError(t, err)

		ac, err := c.ParseClaims(ctx, access)
		require.NoError(t, err)
		assert.Equal(t, Access, ac.Kind)

		rc, err := c.DecodeUnchecked(refresh)
		require.NoError(t, err)
		assert.Equal(t, Refresh, rc.Kind)
		assert.Equal(t, "device-1", rc.DeviceID)
		assert.Equal(t, uid, rc.UID)
		assert.Equal(t, testStart, rc.IssuedAt.Time.UTC())
		assert.Equal(t, testStart.Add(20*time.Second), rc.ExpiresAt.Time.UTC())
	})

	t.Run("RotationInSameSecond", func(t *testing.T) {
		_, refresh, err := c.GenPair(ctx, "device-1", uid, testStart)
		require.NoError(t, err)

		rc, err := c.DecodeUnchecked(refresh)
		require.NoError(t, err)
		assert.Equal(t, testStart.Add(time.Second), rc.IssuedAt.Time.UTC())
	})

	t.Run("RotationAfterPrevious", func(t *testing.T) {
		clk.Set(testStart.Add(5 * time.Second))
		_, refresh, err := c.GenPair(ctx, "device-1", uid, testStart)
		require.NoError(t, err)

		rc, err := c.DecodeUnchecked(refresh)
		require.NoError(t, err)
		assert.Equal(t, testStart.Add(5*time.Second), rc.IssuedAt.Time.UTC())
	})
}

func TestCore_DecodeUnchecked(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := newTestCore(clk)

	_, err := c.DecodeUnchecked("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, token, err := c.GenPair(context.Background(), "device", uuid.New(), time.Time{})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	claims, err := c.DecodeUnchecked(token)
	require.NoError(t, err)
	assert.Equal(t, "device", claims.DeviceID)
}
