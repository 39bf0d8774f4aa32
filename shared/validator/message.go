package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":         "{field} is required",
	"required_without": "{field} is required when {param} is empty",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"oneof":            "{field} must be one of {param}",
	"max":              "{field} must be at most {param}",
	"min":              "{field} must be at least {param}",
	"email":            "{field} must be a valid email address",
	"datetime":         "{field} must be a date formatted as {param}",
	"nefield":          "{field} must differ from {param}",
	"mimetypes":        "{field} must be one of {param}",
	"maxfilesize":      "{field} must not exceed {param} MB",
}

// message renders the first field error that has a template, joining the
// remaining failures' fields so a client sees everything that was rejected.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	var (
		first  string
		others []string
	)

	for _, fe := range valErrors {
		tmpl, ok := messages[fe.Tag()]
		if !ok {
			tmpl = "{field} failed the " + fe.Tag() + " check"
		}

		text := strings.NewReplacer("{field}", fe.Field(), "{param}", fe.Param()).Replace(tmpl)
		if first == "" {
			first = text
		} else {
			others = append(others, fe.Field())
		}
	}

	if len(others) == 0 {
		return first
	}

	return first + " (also invalid: " + strings.Join(others, ", ") + ")"
}
