package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/bloggers-auth/internal/auth"
	"github.com/JMURv/bloggers-auth/internal/auth/jwt"
	"github.com/JMURv/bloggers-auth/internal/auth/throttle"
	"github.com/JMURv/bloggers-auth/internal/cache"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/JMURv/bloggers-auth/internal/dto"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/JMURv/bloggers-auth/internal/repo"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func refreshClaims(uid uuid.UUID, deviceID string, iat time.Time, ttl time.Duration) jwt.Claims {
	return jwt.Claims{
		UID:      uid,
		DeviceID: deviceID,
		Kind:     jwt.Refresh,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(iat),
			ExpiresAt: gojwt.NewNumericDate(iat.Add(ttl)),
		},
	}
}

func TestController_AllowAttempt(t *testing.T) {
	c, d := newTestController(t)

	d.throttle.EXPECT().Allow(gomock.Any(), "1.1.1.1", throttle.Login).Return(false, nil)
	ok, err := c.AllowAttempt(context.Background(), "1.1.1.1", throttle.Login)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestController_CheckCredentials(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()

	confirmed := &md.User{ID: uuid.New(), Login: "alice", Email: "alice@example.com", Password: "hash", IsEmailVerified: true}
	unconfirmed := &md.User{ID: uuid.New(), Login: "bob", Email: "bob@example.com", Password: "hash"}
	testErr := errors.New("db error")

	tests := []struct {
		name     string
		login    string
		setup    func()
		expected *md.User
		err      error
	}{
		{
			name:  "Success",
			login: confirmed.Email,
			setup: func() {
				d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), confirmed.Email).Return(confirmed, nil)
				d.auth.EXPECT().ComparePasswords(confirmed.Password, "123456").Return(nil)
			},
			expected: confirmed,
		},
		{
			name:  "UnknownAccount",
			login: "ghost",
			setup: func() {
				d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), "ghost").Return(nil, repo.ErrNotFound)
				d.auth.EXPECT().HashPassword(gomock.Any()).Return("absent-hash", nil)
				d.auth.EXPECT().ComparePasswords("absent-hash", "123456").Return(auth.ErrInvalidCredentials)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "UnconfirmedEmail",
			login: unconfirmed.Login,
			setup: func() {
				d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), unconfirmed.Login).Return(unconfirmed, nil)
				d.auth.EXPECT().ComparePasswords(unconfirmed.Password, "123456").Return(nil)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "WrongPassword",
			login: confirmed.Login,
			setup: func() {
				d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), confirmed.Login).Return(confirmed, nil)
				d.auth.EXPECT().ComparePasswords(confirmed.Password, "123456").Return(auth.ErrInvalidCredentials)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "RepositoryError",
			login: confirmed.Login,
			setup: func() {
				d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), confirmed.Login).Return(nil, testErr)
			},
			err: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			res, err := c.CheckCredentials(ctx, tt.login, "123456")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}
}

func TestController_CheckCredentialsUnknownAccountHashesOnce(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()

	d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), "ghost").Return(nil, repo.ErrNotFound).Times(3)
	d.auth.EXPECT().HashPassword(gomock.Any()).Return("absent-hash", nil).Times(1)
	d.auth.EXPECT().ComparePasswords("absent-hash", "123456").Return(auth.ErrInvalidCredentials).Times(3)

	for i := 0; i < 3; i++ {
		res, err := c.CheckCredentials(ctx, "ghost", "123456")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, res)
	}
}

func TestController_Login(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()

	u := &md.User{ID: uuid.New(), Email: "user@test.com", Password: "hash", IsEmailVerified: true}
	device := &dto.DeviceRequest{IP: "1.1.1.1", UA: "Chrome"}
	req := &dto.LoginRequest{LoginOrEmail: u.Email, Password: "123456"}

	t.Run("Success", func(t *testing.T) {
		var deviceID string
		d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), u.Email).Return(u, nil)
		d.auth.EXPECT().ComparePasswords(u.Password, req.Password).Return(nil)
		d.auth.EXPECT().
			GenPair(gomock.Any(), gomock.Any(), u.ID, time.Time{}).
			DoAndReturn(func(_ context.Context, id string, _ uuid.UUID, _ time.Time) (string, string, error) {
				deviceID = id
				return "access", "refresh", nil
			})
		d.auth.EXPECT().
			DecodeUnchecked("refresh").
			DoAndReturn(func(string) (jwt.Claims, error) {
				return refreshClaims(u.ID, deviceID, testNow, time.Hour), nil
			})
		d.repo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *md.Session) error {
				assert.Equal(t, deviceID, s.DeviceID)
				assert.Equal(t, u.ID, s.UserID)
				assert.True(t, s.IssuedAt.Equal(testNow))
				assert.True(t, s.ExpiresAt.Equal(testNow.Add(time.Hour)))
				assert.Equal(t, device.IP, s.IP)
				assert.Equal(t, device.UA, s.DeviceLabel)
				return nil
			})

		res, err := c.Login(ctx, device, req)
		require.NoError(t, err)
		assert.Equal(t, "access", res.Access)
		assert.Equal(t, "refresh", res.Refresh)
		assert.True(t, res.RefreshExpiresAt.Equal(testNow.Add(time.Hour)))
	})

	t.Run("BadCredentials", func(t *testing.T) {
		d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), u.Email).Return(nil, repo.ErrNotFound)
		d.auth.EXPECT().HashPassword(gomock.Any()).Return("absent-hash", nil)
		d.auth.EXPECT().ComparePasswords("absent-hash", req.Password).Return(auth.ErrInvalidCredentials)

		_, err := c.Login(ctx, device, req)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("SessionStoreError", func(t *testing.T) {
		testErr := errors.New("db error")
		d.repo.EXPECT().GetUserByLoginOrEmail(gomock.Any(), u.Email).Return(u, nil)
		d.auth.EXPECT().ComparePasswords(u.Password, req.Password).Return(nil)
		d.auth.EXPECT().GenPair(gomock.Any(), gomock.Any(), u.ID, time.Time{}).Return("access", "refresh", nil)
		d.auth.EXPECT().DecodeUnchecked("refresh").Return(refreshClaims(u.ID, "d", testNow, time.Hour), nil)
		d.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(testErr)

		_, err := c.Login(ctx, device, req)
		assert.ErrorIs(t, err, testErr)
	})
}

func TestController_AuthorizeRefresh(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()

	uid := uuid.New()
	session := &md.Session{DeviceID: "device", UserID: uid, IssuedAt: testNow}

	tests := []struct {
		name  string
		token string
		setup func()
		err   error
	}{
		{
			name:  "Valid",
			token: "token",
			setup: func() {
				d.auth.EXPECT().ParseClaims(gomock.Any(), "token").Return(refreshClaims(uid, "device", testNow, time.Hour), nil)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(&md.User{ID: uid}, nil)
				d.repo.EXPECT().GetSession(gomock.Any(), "device", uid).Return(session, nil)
			},
		},
		{
			name:  "Missing",
			token: "",
			setup: func() {},
			err:   ErrUnauthorized,
		},
		{
			name:  "BadSignature",
			token: "token",
			setup: func() {
				d.auth.EXPECT().ParseClaims(gomock.Any(), "token").Return(jwt.Claims{}, jwt.ErrInvalidToken)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "AccessTokenPresented",
			token: "token",
			setup: func() {
				claims := refreshClaims(uid, "", testNow, time.Hour)
				claims.Kind = jwt.Access
				d.auth.EXPECT().ParseClaims(gomock.Any(), "token").Return(claims, nil)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "UserGone",
			token: "token",
			setup: func() {
				d.auth.EXPECT().ParseClaims(gomock.Any(), "token").Return(refreshClaims(uid, "device", testNow, time.Hour), nil)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(nil, repo.ErrNotFound)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "SessionTerminated",
			token: "token",
			setup: func() {
				d.auth.EXPECT().ParseClaims(gomock.Any(), "token").Return(refreshClaims(uid, "device", testNow, time.Hour), nil)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(&md.User{ID: uid}, nil)
				d.repo.EXPECT().GetSession(gomock.Any(), "device", uid).Return(nil, repo.ErrNotFound)
			},
			err: ErrUnauthorized,
		},
		{
			name:  "SupersededToken",
			token: "token",
			setup: func() {
				d.auth.EXPECT().
					ParseClaims(gomock.Any(), "token").
					Return(refreshClaims(uid, "device", testNow.Add(-time.Second), time.Hour), nil)
				d.repo.EXPECT().GetUserByID(gomock.Any(), uid).Return(&md.User{ID: uid}, nil)
				d.repo.EXPECT().GetSession(gomock.Any(), "device", uid).Return(session, nil)
			},
			err: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			res, err := c.AuthorizeRefresh(ctx, tt.token)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, dto.SessionInfo{UserID: uid, DeviceID: "device", IssuedAt: testNow}, res)
		})
	}
}

func TestController_Refresh(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()

	uid := uuid.New()
	info := dto.SessionInfo{UserID: uid, DeviceID: "device", IssuedAt: testNow}
	device := &dto.DeviceRequest{IP: "2.2.2.2", UA: "Firefox"}
	next := testNow.Add(time.Second)

	tests := []struct {
		name    string
		replace error
		err     error
	}{
		{name: "Rotated"},
		{name: "LostRace", replace: repo.ErrConflict, err: ErrUnauthorized},
		{name: "StoreError", replace: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.auth.EXPECT().GenPair(gomock.Any(), "device", uid, testNow).Return("access", "refresh", nil)
			d.auth.EXPECT().DecodeUnchecked("refresh").Return(refreshClaims(uid, "device", next, time.Hour), nil)
			d.repo.EXPECT().
				ReplaceSession(gomock.Any(), gomock.Any(), testNow).
				DoAndReturn(func(_ context.Context, s *md.Session, _ time.Time) error {
					assert.True(t, s.IssuedAt.Equal(next))
					assert.Equal(t, device.IP, s.IP)
					assert.Equal(t, device.UA, s.DeviceLabel)
					return tt.replace
				})

			res, err := c.Refresh(ctx, device, info)
			switch {
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			case tt.replace != nil:
				assert.ErrorIs(t, err, tt.replace)
			default:
				require.NoError(t, err)
				assert.Equal(t, "access", res.Access)
				assert.Equal(t, "refresh", res.Refresh)
			}
		})
	}
}

func TestController_Logout(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()
	info := dto.SessionInfo{UserID: uuid.New(), DeviceID: "device"}

	d.repo.EXPECT().DeleteSession(gomock.Any(), "device", info.UserID).Return(nil)
	assert.NoError(t, c.Logout(ctx, info))

	d.repo.EXPECT().DeleteSession(gomock.Any(), "device", info.UserID).Return(repo.ErrNotFound)
	assert.ErrorIs(t, c.Logout(ctx, info), ErrUnauthorized)
}

func TestController_GetMe(t *testing.T) {
	c, d := newTestController(t)
	ctx := context.Background()

	u := &md.User{ID: uuid.New(), Login: "alice", Email: "alice@example.com"}
	expected := &dto.MeResponse{Email: u.Email, Login: u.Login, UserID: u.ID}

	t.Run("Cached", func(t *testing.T) {
		d.cache.EXPECT().
			GetToStruct(gomock.Any(), "user:"+u.ID.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*dto.MeResponse) = *expected
				return nil
			})

		res, err := c.GetMe(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("FromRepository", func(t *testing.T) {
		d.cache.EXPECT().GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetUserByID(gomock.Any(), u.ID).Return(u, nil)
		d.cache.EXPECT().Set(gomock.Any(), config.DefaultCacheTime, "user:"+u.ID.String(), gomock.Any())

		res, err := c.GetMe(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("NotFound", func(t *testing.T) {
		d.cache.EXPECT().GetToStruct(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrNotFoundInCache)
		d.repo.EXPECT().GetUserByID(gomock.Any(), u.ID).Return(nil, repo.ErrNotFound)

		_, err := c.GetMe(ctx, u.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
