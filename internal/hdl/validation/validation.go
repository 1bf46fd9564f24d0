// Package validation checks decoded request bodies and reports failures per
// JSON field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/JMURv/bloggers-auth/internal/dto"
	"github.com/go-playground/validator/v10"
)

var (
	loginRe = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)
	emailRe = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(
		func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		},
	)

	mustRegister(v, "login", isLogin)
	mustRegister(v, "email_pattern", isEmail)
	mustRegister(
		v, "login_or_email", func(fl validator.FieldLevel) bool {
			return isLogin(fl) || isEmail(fl)
		},
	)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

func isLogin(fl validator.FieldLevel) bool {
	return loginRe.MatchString(fl.Field().String())
}

func isEmail(fl validator.FieldLevel) bool {
	return emailRe.MatchString(fl.Field().String())
}

// Struct validates req and returns one entry per failing field, or nil.
func Struct(req any) []dto.FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []dto.FieldError{{Message: err.Error()}}
	}

	res := make([]dto.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		res = append(
			res, dto.FieldError{
				Message: message(fe),
				Field:   fe.Field(),
			},
		)
	}
	return res
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s should be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s should be at most %s characters", fe.Field(), fe.Param())
	case "login":
		return "login may contain only letters, digits, '_' and '-'"
	case "email_pattern":
		return "email is not valid"
	case "login_or_email":
		return "loginOrEmail should be a login or an email"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
