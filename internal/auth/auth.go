package auth

import (
	"github.com/JMURv/bloggers-auth/internal/auth/jwt"
	"github.com/JMURv/bloggers-auth/internal/clock"
	"github.com/JMURv/bloggers-auth/internal/config"
	"golang.org/x/crypto/bcrypt"
)

type Core interface {
	jwt.Port
	HashPassword(pswd string) (string, error)
	ComparePasswords(hashed, pswd string) error
}

type Auth struct {
	*jwt.Core
	cost int
}

func New(conf config.Config, clk clock.Clock) *Auth {
	cost := conf.Auth.HashCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Auth{
		Core: jwt.New(conf, clk),
		cost: cost,
	}
}

func (a *Auth) HashPassword(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), a.cost)
	return string(bytes), err
}

func (a *Auth) ComparePasswords(hashed, pswd string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pswd)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
