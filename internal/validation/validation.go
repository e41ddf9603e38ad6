package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by every request payload.
type Validatable interface {
	Validate() error
}

// RequiredMessager is implemented by payloads that answer a missing required
// field with their own message instead of "Validation failed". The field
// errors are reported either way.
type RequiredMessager interface {
	RequiredMessage() string
}

// CustomValidationError is a rule violation that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field errors are reported with the
// name the client used: the json tag, else the query tag, else the param tag.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

// Struct validates s against its struct tags.
func Struct(s any) error {
	return Validator().Struct(s)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(fld.Name)
}

// BindAndValidate binds path params, query params and body into payload,
// then validates it. Failures are returned as 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(c, err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

func bindError(c echo.Context, err error) error {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return invalidField(bindingErr.Field)
	}

	// Path and query values that don't parse. The binder does not name the
	// field, so it is found by its value.
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if field := fieldWithValue(c, numErr.Num); field != "" {
			return invalidField(field)
		}
		return errs.NewBadRequestError("Invalid request parameters", true, nil, nil)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return invalidField(typeErr.Field)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return errs.NewBadRequestError("Unsupported content type", true, nil, nil)
	}

	return errs.NewBadRequestError("Invalid request body", true, nil, nil)
}

func invalidField(field string) error {
	return errs.NewBadRequestError(
		fmt.Sprintf("Invalid value for %s", field),
		true,
		nil,
		[]errs.FieldError{{Field: field, Error: "has an invalid value"}},
	)
}

// fieldWithValue returns the path param, else the query param, whose value is v.
func fieldWithValue(c echo.Context, v string) string {
	values := c.ParamValues()
	for i, name := range c.ParamNames() {
		if i < len(values) && values[i] == v {
			return name
		}
	}

	query := c.QueryParams()
	for _, name := range slices.Sorted(maps.Keys(query)) {
		if slices.Contains(query[name], v) {
			return name
		}
	}
	return ""
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	err := v.Validate()
	if err == nil {
		return "", nil
	}

	msg, fieldErrors := extractValidationError(err)
	if r, ok := v.(RequiredMessager); ok && missingRequired(err) {
		msg = r.RequiredMessage()
	}
	return msg, fieldErrors
}

// missingRequired reports whether err has a failed required rule. Path ids
// are left out: a missing id has its own message.
func missingRequired(err error) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, e := range validationErrors {
		if e.Tag() == "required" && e.Field() != "id" {
			return true
		}
	}
	return false
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: fieldMessage(e),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(e validator.FieldError) string {
	isString := e.Kind() == reflect.String

	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", e.Field(), e.Tag(), e.Param())
		}
		return fmt.Sprintf("%s: %s", e.Field(), e.Tag())
	}
}
