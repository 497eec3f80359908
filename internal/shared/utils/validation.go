package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lumenhq/lumen/internal/shared/errors"
)

var (
	validate *validator.Validate

	hhmmRegex       = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	settingKeyRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z0-9_]+)+$`)
	hexColorRegex   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	weekdays = map[string]bool{
		"mon": true, "tue": true, "wed": true, "thu": true, "fri": true, "sat": true, "sun": true,
	}
)

func init() {
	validate = validator.New()
	registerValidations(validate)
}

// SetupBindingValidator registers the custom tags and json field names on
// gin's binding engine so `binding:` tags accept the same rules.
func SetupBindingValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerValidations(v)
	}
}

func registerValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsHHMM(fl.Field().String())
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return weekdays[fl.Field().String()]
	})
	_ = v.RegisterValidation("settingkey", func(fl validator.FieldLevel) bool {
		return settingKeyRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorRegex.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates s and returns a validation AppError whose message
// lists every failing field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Invalid request", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return errors.NewValidationError(strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "hhmm":
		return fmt.Sprintf("%s must be a time in HH:MM format", field)
	case "weekday":
		return fmt.Sprintf("%s must contain only mon, tue, wed, thu, fri, sat or sun", field)
	case "settingkey":
		return fmt.Sprintf("%s must be a namespaced key like \"weather.units\"", field)
	case "hexcolor6":
		return fmt.Sprintf("%s must be a color like #4a9eff", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

// IsHHMM reports whether s is a 24-hour clock time such as "08:30".
func IsHHMM(s string) bool {
	return hhmmRegex.MatchString(s)
}

// IsSettingKey reports whether key is a namespaced setting key.
func IsSettingKey(key string) bool {
	return settingKeyRegex.MatchString(key)
}
