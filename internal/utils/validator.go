// internal/utils/validator.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("notblank", validateNotBlank)
}

// FieldError describes a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError reports every field of an input that failed validation.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, tag, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Tag: tag, Message: message}}}
}

// ValidateStruct runs the struct's validate tags and returns a *ValidationError
// listing all violations, or nil.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if fields := GetValidationErrors(err); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return err
}

// DecodeJSON unmarshals raw into v, reporting malformed bodies and mistyped
// fields as a *ValidationError. Fields already set on v act as defaults.
func DecodeJSON(raw []byte, v interface{}) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return NewValidationError("body", "required", "Request body is required")
	}

	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &validationErr):
		return validationErr
	case errors.As(err, &syntaxErr):
		return NewValidationError("body", "json", fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &typeErr):
		return typeError(typeErr.Field, typeErr)
	default:
		return NewValidationError("body", "json", err.Error())
	}
}

// ElementDecodeError reports a failure to decode element index of the array
// at path, naming the field the way constraint errors do, e.g.
// "items[1].quantity".
func ElementDecodeError(path string, index int, err error) *ValidationError {
	element := fmt.Sprintf("%s[%d]", path, index)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return typeError(element, typeErr)
		}
		return typeError(element+"."+typeErr.Field, typeErr)
	}
	return NewValidationError(element, "json", err.Error())
}

func typeError(field string, typeErr *json.UnmarshalTypeError) *ValidationError {
	if field == "" {
		field = "body"
	}
	return NewValidationError(field, "type", fmt.Sprintf("%s must be %s, got %s", field, describeType(typeErr.Type), typeErr.Value))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func GetValidationErrors(err error) []FieldError {
	var validationErrors []FieldError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, FieldError{
				Field:   fieldPath(e),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// fieldPath drops the root struct name from the namespace, leaving e.g.
// "items[0].quantity".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "notblank":
		return e.Field() + " must not be blank"
	case "email":
		return "Invalid email format"
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "min":
		if e.Kind() == reflect.Slice {
			return e.Field() + " must contain at least " + e.Param() + " item(s)"
		}
		return e.Field() + " must be at least " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return e.Field() + " is invalid"
	}
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Ptr:
		return describeType(t.Elem())
	}
	return "a valid value"
}
