package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("isbn", isISBN)
	_ = v.RegisterValidation("clock", isClock)
	_ = v.RegisterValidation("day", isDay)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var isbnRe = regexp.MustCompile(`^(97[89])?\d{9}[\dX]$`)

// isISBN accepts ISBN-10 and ISBN-13 with optional hyphens or spaces.
func isISBN(fl validator.FieldLevel) bool {
	s := strings.NewReplacer("-", "", " ", "").Replace(fl.Field().String())
	if len(s) != 10 && len(s) != 13 {
		return false
	}
	return isbnRe.MatchString(strings.ToUpper(s))
}

func isClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}
