package validation

import (
	"testing"

	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/stretchr/testify/assert"
)

func fields(errs []dto.FieldError) []string {
	res := make([]string, 0, len(errs))
	for _, e := range errs {
		res = append(res, e.Field)
	}
	return res
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		req      any
		expected []string
	}{
		{
			name:     "ValidRegistration",
			req:      &dto.RegistrationRequest{Login: "alice_1", Password: "123456", Email: "alice@example.com"},
			expected: []string{},
		},
		{
			name:     "LoginTooShort",
			req:      &dto.RegistrationRequest{Login: "al", Password: "123456", Email: "alice@example.com"},
			expected: []string{"login"},
		},
		{
			name:     "LoginTooLong",
			req:      &dto.RegistrationRequest{Login: "alice_alice", Password: "123456", Email: "alice@example.com"},
			expected: []string{"login"},
		},
		{
			name:     "LoginBadChars",
			req:      &dto.RegistrationRequest{Login: "al ice", Password: "123456", Email: "alice@example.com"},
			expected: []string{"login"},
		},
		{
			name:     "EverythingWrong",
			req:      &dto.RegistrationRequest{Login: "", Password: "123", Email: "not-an-email"},
			expected: []string{"login", "password", "email"},
		},
		{
			name:     "LoginWithEmail",
			req:      &dto.LoginRequest{LoginOrEmail: "user@test.com", Password: "123456"},
			expected: []string{},
		},
		{
			name:     "LoginWithLogin",
			req:      &dto.LoginRequest{LoginOrEmail: "alice", Password: "123456"},
			expected: []string{},
		},
		{
			name:     "LoginWithGarbage",
			req:      &dto.LoginRequest{LoginOrEmail: "a b@c", Password: "123456"},
			expected: []string{"loginOrEmail"},
		},
		{
			name:     "NewPasswordMissingCode",
			req:      &dto.NewPasswordRequest{NewPassword: "123456"},
			expected: []string{"recoveryCode"},
		},
		{
			name:     "EmptyCode",
			req:      &dto.ConfirmationRequest{},
			expected: []string{"code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fields(Struct(tt.req)))
		})
	}
}

func TestMustRegister(t *testing.T) {
	assert.NotPanics(t, func() { newValidator() })

	v := newValidator()
	assert.Panics(t, func() { mustRegister(v, "", isLogin) })
}
