package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"quizmaster/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance. Field names in reported
// errors follow the json tags of the request structs.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateStruct checks req against its validate tags. Failures come back as
// a VALIDATION_ERROR whose details map each offending field to a message.
func (v *Validator) ValidateStruct(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.NewValidationError(err.Error())
	}

	domainErr := domain.NewValidationError("Request validation failed")
	for _, fe := range fieldErrs {
		domainErr.WithContext(fieldPath(fe), describe(fe))
	}
	return domainErr
}

// fieldPath drops the root struct name: "CreateQuizRequest.questions[0].text" -> "questions[0].text".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// ValidateID parses a positive integer path parameter.
func (v *Validator) ValidateID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(fmt.Sprintf("%s must be a positive integer", name)).WithContext(name, raw)
	}
	return id, nil
}

// ValidateResultID checks that raw is a well-formed ULID.
func (v *Validator) ValidateResultID(raw string) error {
	if _, err := ulid.ParseStrict(raw); err != nil {
		return domain.NewValidationError("result_id must be a valid ULID").WithContext("result_id", raw)
	}
	return nil
}
