package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const invalidValue = "invalid value"

var validate = validator.New()

// checkVar validates a single value against validator tags and reports the
// failure as a field error.
func checkVar(field string, value interface{}, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return invalidField(field, "failed on the '"+verrs[0].Tag()+"' rule")
		}
		return invalidField(field, invalidValue)
	}
	return nil
}

// requiredStringField reads a mandatory non-blank string, trimmed.
func requiredStringField(data map[string]interface{}, key string) (string, error) {
	raw, present := data[key]
	if !present || raw == nil {
		return "", invalidField(key, "is required")
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidField(key, invalidValue)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalidField(key, "must not be empty")
	}
	return s, nil
}

// rejectUnknownFields fails on the first key (in sorted order) that is not
// one of allowed.
func rejectUnknownFields(data map[string]interface{}, allowed ...string) error {
	known := make(map[string]struct{}, len(allowed))
	for _, field := range allowed {
		known[field] = struct{}{}
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := known[key]; !ok {
			return invalidField(key, "unrecognized field")
		}
	}
	return nil
}

// boolField reads an optional boolean. A present null is invalid.
func boolField(data map[string]interface{}, key string) (value bool, present bool, err error) {
	raw, present := data[key]
	if !present {
		return false, false, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, true, invalidField(key, invalidValue)
	}
	return value, true, nil
}

// nullableStringField reads an optional string that may be explicitly null.
func nullableStringField(data map[string]interface{}, key string) (value *string, present bool, err error) {
	raw, present := data[key]
	if !present || raw == nil {
		return nil, present, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, true, invalidField(key, invalidValue)
	}
	return &s, true, nil
}

// stringListField reads an optional list of strings. Present but not a list
// of strings is invalid; the returned slice is non-nil when present.
func stringListField(data map[string]interface{}, key string) (values []string, present bool, err error) {
	raw, present := data[key]
	if !present {
		return nil, false, nil
	}

	switch list := raw.(type) {
	case []string:
		return append([]string{}, list...), true, nil
	case []interface{}:
		values = make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, true, invalidField(key, invalidValue)
			}
			values = append(values, s)
		}
		return values, true, nil
	default:
		return nil, true, invalidField(key, invalidValue)
	}
}

// trimmedNames trims every name and rejects blanks and names longer than a
// tag name may be.
func trimmedNames(field string, names []string) ([]string, error) {
	trimmed := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, invalidField(field, "tag names must not be empty")
		}
		if err := checkVar(field, name, "max=200"); err != nil {
			return nil, err
		}
		trimmed = append(trimmed, name)
	}
	return trimmed, nil
}
