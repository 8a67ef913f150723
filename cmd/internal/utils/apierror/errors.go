package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"clientsapi/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// HasErrors reports whether any field problem was recorded.
func (s *StructuredError) HasErrors() bool {
	return len(s.Errors) > 0
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError    = NewSimple(404, "Resource not found")
	InvalidPageError = NewSimple(404, "Invalid page")
	InvalidIDError   = NewSimple(400, "The provided ID is invalid, IDs are usually int32 > 0")

	DataSourceInUseError = NewSimple(409, "Data source is referenced by existing clients and cannot be deleted")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := fe.Field()

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "min":
			problems.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			problems.Add(field, "Value is too long, max: "+fe.Param())
		case "oneof":
			problems.Add(field, "Value must be one of: "+fe.Param())
		case "datetime":
			problems.Add(field, "Value must be a date in YYYY-MM-DD format")
		case "decimal2":
			problems.Add(field, "Value must be a decimal number with at most 2 fractional digits")
		case "inn", "kpp", "ogrn":
			if msg, found := validators.IdentifierMessage(fe.Tag(), fe.Value()); found {
				problems.Add(field, msg)
			} else {
				problems.Add(field, "Invalid value provided")
			}

		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

// NewFieldError is a 400 with a single problem on a single field.
func NewFieldError(field, problem string) *StructuredError {
	s := NewStructured(http.StatusBadRequest)
	s.Add(field, problem)
	return s
}
