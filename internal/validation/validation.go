// Package validation provides struct validation using
// go-playground/validator v10: a thread-safe singleton validator with a
// custom `latlng` rule for "latitude,longitude" location strings.
// Validation failures translate into BadRequest API errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"SensorGrid.mongoDB/internal/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// latLngPattern accepts two decimal numbers separated by a comma and an
// optional space, each with an optional leading minus sign.
var latLngPattern = regexp.MustCompile(`^-?\d{1,3}\.\d+,\s?-?\d{1,3}\.\d+$`)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report field names as they appear on the wire.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Validator panics only on non-function registrations; this one
		// cannot fail.
		_ = validate.RegisterValidation("latlng", func(fl validator.FieldLevel) bool {
			return latLngPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// ValidateStruct checks s against its validate tags and returns a
// BadRequest APIError naming the first offending field, or nil when the
// struct is valid.
func ValidateStruct(s interface{}) *models.APIError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return models.BadRequest(messageFor(verrs[0]))
	}
	return models.BadRequest("invalid request payload")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("field %q must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "latlng":
		return fmt.Sprintf("field %q must be a valid \"lat,lng\" pair", fe.Field())
	case "email":
		return fmt.Sprintf("field %q must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("field %q must be at least %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field %q is invalid", fe.Field())
	}
}
