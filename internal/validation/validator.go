package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"transaction-tree/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Decimals are validated through their canonical string form.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("amount_scale", validateAmountScale)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateTransactionType checks the value against the closed set of transaction types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateAmountScale checks that an amount fits decimal(20,2)
func validateAmountScale(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return models.ValidateAmount(amount) == nil
}

// FieldErrors flattens validation errors into a json-field to message map.
// It returns false when err is not a validator.ValidationErrors.
func FieldErrors(err error) (map[string]string, bool) {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fieldErrors, true
}

// FailedTag reports whether err contains a failure of tag on field
func FailedTag(err error, field, tag string) bool {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fieldErr := range validationErrs {
		if fieldErr.Field() == field && fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "transaction_type":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	case "amount_scale":
		return fmt.Sprintf("must be a number with at most %d digits and %d decimal places",
			models.AmountMaxDigits, models.AmountScale)
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
