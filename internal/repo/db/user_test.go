package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "login", "email", "password", "confirmation_code",
	"code_expires_at", "is_email_verified", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Repository{conn: sqlx.NewDb(db, "sqlmock")}, mock
}

func userRow(u *md.User) *sqlmock.Rows {
	var code, exp any
	if u.ConfirmationCode != nil {
		code = *u.ConfirmationCode
	}
	if u.CodeExpiresAt != nil {
		exp = *u.CodeExpiresAt
	}
	return sqlmock.NewRows(userRowColumns).AddRow(
		u.ID.String(), u.Login, u.Email, u.Password, code,
		exp, u.IsEmailVerified, u.CreatedAt, u.UpdatedAt,
	)
}

func TestRepository_GetUserByID(t *testing.T) {
	r, mock := newMockRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	testUser := &md.User{
		ID:        uuid.New(),
		Login:     "alice",
		Email:     "alice@example.com",
		Password:  "hash",
		CreatedAt: now,
		UpdatedAt: now,
	}
	testErr := errors.New("db error")

	tests := []struct {
		name        string
		mock        func()
		expected    *md.User
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUser.ID).
					WillReturnRows(userRow(testUser))
			},
			expected: testUser,
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUser.ID).
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "DBError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
					WithArgs(testUser.ID).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			res, err := r.GetUserByID(context.Background(), testUser.ID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetUserByLoginOrEmail(t *testing.T) {
	r, mock := newMockRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	testUser := &md.User{
		ID:        uuid.New(),
		Login:     "alice",
		Email:     "alice@example.com",
		Password:  "hash",
		CreatedAt: now,
		UpdatedAt: now,
	}
	q := `FROM users u WHERE (u.login = $1 OR u.email = $2) LIMIT 1`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs(testUser.Email, testUser.Email).
			WillReturnRows(userRow(testUser))

		res, err := r.GetUserByLoginOrEmail(context.Background(), testUser.Email)
		require.NoError(t, err)
		assert.Equal(t, testUser, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs("ghost", "ghost").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		res, err := r.GetUserByLoginOrEmail(context.Background(), "ghost")
		assert.ErrorIs(t, err, repo.ErrNotFound)
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateUser(t *testing.T) {
	r, mock := newMockRepo(t)

	code := "code"
	exp := time.Now().UTC().Add(10 * time.Minute)
	testUser := &md.User{
		ID:               uuid.New(),
		Login:            "alice",
		Email:            "alice@example.com",
		Password:         "hash",
		ConfirmationCode: &code,
		CodeExpiresAt:    &exp,
		CreatedAt:        time.Now().UTC(),
	}
	testErr := errors.New("db error")

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userCreateQ)).
					WithArgs(
						testUser.ID, testUser.Login, testUser.Email, testUser.Password,
						sqlmock.AnyArg(), sqlmock.AnyArg(), false, testUser.CreatedAt,
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "AlreadyExists",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userCreateQ)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "DBError",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userCreateQ)).
					WillReturnError(testErr)
			},
			expectedErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()
			err := r.CreateUser(context.Background(), testUser)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ConfirmEmail(t *testing.T) {
	r, mock := newMockRepo(t)
	uid := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(userConfirmEmailQ)).
			WithArgs(uid, "code").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.ConfirmEmail(context.Background(), uid, "code"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyConfirmed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(userConfirmEmailQ)).
			WithArgs(uid, "code").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, r.ConfirmEmail(context.Background(), uid, "code"), repo.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	r, mock := newMockRepo(t)
	uid := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(userUpdatePasswordQ)).
			WithArgs("newhash", uid, "code").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.UpdatePassword(context.Background(), uid, "code", "newhash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CodeReplaced", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(userUpdatePasswordQ)).
			WithArgs("newhash", uid, "code").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, r.UpdatePassword(context.Background(), uid, "code", "newhash"), repo.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateConfirmationCode(t *testing.T) {
	r, mock := newMockRepo(t)
	exp := time.Now().UTC().Add(10 * time.Minute)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(userUpdateCodeQ)).
			WithArgs("code", exp, "alice@example.com").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.UpdateConfirmationCode(context.Background(), "alice@example.com", "code", exp))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(userUpdateCodeQ)).
			WithArgs("code", exp, "ghost@example.com").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(
			t,
			r.UpdateConfirmationCode(context.Background(), "ghost@example.com", "code", exp),
			repo.ErrNotFound,
		)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
