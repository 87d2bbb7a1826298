package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	// ErrTranslate marks upstream translation failures that are not the
	// client's fault.
	ErrTranslate = errors.New("translation failed")
)

// InvalidFieldsError is returned when a translation request names fields
// outside the translatable set. It carries every invalid field, not just the
// first, so the caller can fix the whole request in one round trip.
type InvalidFieldsError struct {
	Fields []string
}

func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("invalid fields for translation: %s. Valid fields are: %s",
		strings.Join(e.Fields, ", "), strings.Join(ValidTextFields, ", "))
}

func (e *InvalidFieldsError) Is(target error) bool {
	return target == ErrInvalid
}

// UnsupportedLanguageError is returned when the provider cannot translate the
// requested language pair.
type UnsupportedLanguageError struct {
	Source string
	Target string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language pair %s -> %s", e.Source, e.Target)
}

func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrInvalid
}

// InvalidLanguageError is returned when the target language is not a valid
// language code.
type InvalidLanguageError struct {
	Code string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("invalid language code %q, use ISO language codes", e.Code)
}

func (e *InvalidLanguageError) Is(target error) bool {
	return target == ErrInvalid
}
