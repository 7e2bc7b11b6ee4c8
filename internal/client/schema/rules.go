package schema

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// Common rule strings.
const (
	RuleID                = "string,required"
	RuleText              = "string"
	RuleNonEmptyText      = "string,required"
	RuleOptionalText      = "omitempty,string"
	RuleEmail             = "string,required,email"
	RuleBool              = "bool"
	RuleTimestamp         = "string,iso8601"
	RuleOptionalTimestamp = "omitempty,string,iso8601"
	RuleOptionalRecord    = "omitempty,record"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	custom := map[string]validator.Func{
		"string":  isString,
		"bool":    isBool,
		"iso8601": isISO8601,
		"record":  isRecord,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func isBool(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.Bool
}

func isRecord(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.Map
}

func isISO8601(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	_, err := time.Parse(time.RFC3339, f.String())
	return err == nil
}
