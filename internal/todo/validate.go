package todo

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationErrors maps an attribute name to its human readable messages.
type ValidationErrors map[string][]string

func (ve ValidationErrors) Error() string {
	return strings.Join(ve.FullMessages(), ", ")
}

// FullMessages returns "Title can't be blank" style messages sorted by
// attribute.
func (ve ValidationErrors) FullMessages() []string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var messages []string
	for _, f := range fields {
		for _, msg := range ve[f] {
			messages = append(messages, humanize(f)+" "+msg)
		}
	}
	return messages
}

func (ve ValidationErrors) add(field, msg string) {
	ve[field] = append(ve[field], msg)
}

func humanize(field string) string {
	if field == "" {
		return field
	}
	s := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() (*Validator, error) {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank: %w", err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}, nil
}

// Validate returns ValidationErrors when t is invalid and nil otherwise.
func (v *Validator) Validate(t *Todo) error {
	err := v.validate.Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := ValidationErrors{}
	for _, fe := range fieldErrs {
		ve.add(fe.Field(), message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "can't be blank"
	case "max":
		return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	default:
		return "is invalid"
	}
}
