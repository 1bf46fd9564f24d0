package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CountAttempts(t *testing.T) {
	r, mock := newMockRepo(t)
	since := time.Now().UTC().Add(-10 * time.Second)
	testErr := errors.New("db error")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(countAttempts)).
			WithArgs("1.1.1.1", "login", since).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := r.CountAttempts(context.Background(), "1.1.1.1", "login", since)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(countAttempts)).
			WithArgs("1.1.1.1", "login", since).
			WillReturnError(testErr)

		_, err := r.CountAttempts(context.Background(), "1.1.1.1", "login", since)
		assert.ErrorIs(t, err, testErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AddAttempt(t *testing.T) {
	r, mock := newMockRepo(t)
	a := &md.Attempt{IP: "1.1.1.1", Route: "login", CreatedAt: time.Now().UTC()}

	mock.ExpectExec(regexp.QuoteMeta(addAttempt)).
		WithArgs(a.IP, a.Route, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, r.AddAttempt(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}
