package auth

import (
	"testing"

	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth_Passwords(t *testing.T) {
	a := New(config.Config{Auth: config.AuthConfig{HashCost: bcrypt.MinCost}}, clock.Real{})

	hash, err := a.HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NoError(t, a.ComparePasswords(hash, "password1"))
	assert.ErrorIs(t, a.ComparePasswords(hash, "password2"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.ComparePasswords("not-a-hash", "password1"), ErrInvalidCredentials)
}

func TestNew_InvalidCostFallsBack(t *testing.T) {
	a := New(config.Config{Auth: config.AuthConfig{HashCost: 99}}, clock.Real{})
	assert.Equal(t, bcrypt.DefaultCost, a.cost)
}
