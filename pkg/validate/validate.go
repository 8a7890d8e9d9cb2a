package validate

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

const minPasswordLen = 8

type CustomValidator struct {
	validator *validator.Validate
}

type Option func(v *validator.Validate)

// WithCustomTypeFunc lets tags validate the value returned by fn instead of the wrapper type.
func WithCustomTypeFunc(fn validator.CustomTypeFunc, types ...interface{}) Option {
	return func(v *validator.Validate) {
		v.RegisterCustomTypeFunc(fn, types...)
	}
}

func NewCustomValidator(opts ...Option) *CustomValidator {
	v := validator.New()
	// registration is static, a failure here is a programming error
	if err := v.RegisterValidation("password", Password); err != nil {
		panic(err)
	}
	for _, opt := range opts {
		opt(v)
	}
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Password requires at least 8 characters with an upper and a lower case letter,
// a digit and a special character.
func Password(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

func IsStrongPassword(s string) bool {
	var upper, lower, digit, special bool
	length := 0
	for _, r := range s {
		length++
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return length >= minPasswordLen && upper && lower && digit && special
}
