package handler

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tablequeue/waitlist/internal/model"
)

// requiredFields lists the body keys Create and Update insist on, in column
// order.
var requiredFields = []string{
	"cust_LName",
	"cust_FName",
	"phone_num",
	"party_size",
	"position_inLine",
	"checkIn_date",
	"checkIn_time",
	"is_deleted",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages match what the caller sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeFields checks that every required key is present and non-null, then
// decodes and validates the values.  The error tells whether a key was
// absent (ErrMissingFields), mistyped or out of range (*FieldError).
func decodeFields(v *validator.Validate, body []byte) (model.WaitlistFields, error) {
	var f model.WaitlistFields

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return f, ErrInvalidBody
	}
	for _, k := range requiredFields {
		val, ok := raw[k]
		if !ok || string(val) == "null" {
			return f, ErrMissingFields
		}
	}

	if err := json.Unmarshal(body, &f); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return f, &FieldError{Field: te.Field}
		}
		return f, ErrInvalidBody
	}

	if err := v.Struct(f); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return f, &FieldError{Field: ve[0].Field()}
		}
		return f, err
	}
	return f, nil
}
