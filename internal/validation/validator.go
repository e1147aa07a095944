package validation

import (
	"reflect"
	"strings"

	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	minDayOfMonth = 1
	maxDayOfMonth = 31
	moneyPlaces   = 2
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// Custom validation functions

// validateMoneyAmount validates that an amount is positive and has at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	var amount decimal.Decimal
	switch fl.Field().Kind() {
	case reflect.String:
		parsed, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		amount = parsed
	case reflect.Float32, reflect.Float64:
		amount = decimal.NewFromFloat(fl.Field().Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		amount = decimal.NewFromInt(fl.Field().Int())
	default:
		return false
	}

	return amount.IsPositive() && amount.Equal(amount.Round(moneyPlaces))
}

// validateDayOfMonth validates cutoff and payment days
func validateDayOfMonth(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		day := fl.Field().Int()
		return day >= minDayOfMonth && day <= maxDayOfMonth
	default:
		return false
	}
}

// validateAccountType accepts any spelling the account model can normalize
func validateAccountType(fl validator.FieldLevel) bool {
	_, err := models.NormalizeAccountType(fl.Field().String())
	return err == nil
}

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	validTypes := map[string]bool{
		models.TransactionTypeIncome:   true,
		models.TransactionTypeExpense:  true,
		models.TransactionTypeTransfer: true,
	}
	return validTypes[fl.Field().String()]
}
