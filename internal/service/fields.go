package service

import (
	"slices"
	"strings"
)

// ValidTextFields is the allow-list of translatable novel fields.
var ValidTextFields = []string{"title", "description", "genre", "author"}

// DefaultField is translated when the request names no fields.
const DefaultField = "description"

// SelectFields validates the raw comma-separated fields parameter against the
// allow-list and returns the ordered field list. An empty parameter defaults
// to the description field. Field names are matched exactly; duplicates are
// preserved. Any unknown name rejects the whole request, and the returned
// error names every invalid field.
func SelectFields(raw string) ([]string, error) {
	if raw == "" {
		return []string{DefaultField}, nil
	}

	fields := strings.Split(raw, ",")

	var invalid []string
	for _, field := range fields {
		if !slices.Contains(ValidTextFields, field) {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidFieldsError{Fields: invalid}
	}
	return fields, nil
}
