package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of compile failure.
type Code string

const (
	CodeUnsupportedLiteralKind Code = "UnsupportedLiteralKind"
	CodeMissingSliderBounds    Code = "MissingSliderBounds"
	CodeUnsupportedFieldShape  Code = "UnsupportedFieldShape"
	CodeUnknownRecordShape     Code = "UnknownRecordShape"
	CodeMalformedDirective     Code = "MalformedDirective"
)

var (
	ErrUnsupportedLiteralKind = errors.New("unsupported slider bound literal")
	ErrMissingSliderBounds    = errors.New("slider requires both min and max bounds")
	ErrUnsupportedFieldShape  = errors.New("unsupported field type")
	ErrUnknownRecordShape     = errors.New("not a struct record")
	ErrMalformedDirective     = errors.New("malformed directive")
)

var sentinels = map[Code]error{
	CodeUnsupportedLiteralKind: ErrUnsupportedLiteralKind,
	CodeMissingSliderBounds:    ErrMissingSliderBounds,
	CodeUnsupportedFieldShape:  ErrUnsupportedFieldShape,
	CodeUnknownRecordShape:     ErrUnknownRecordShape,
	CodeMalformedDirective:     ErrMalformedDirective,
}

// Error is a fatal compile error attributed to a record and, optionally, a field.
type Error struct {
	Code    Code
	Record  string
	Field   string
	Message string
}

// Errorf creates an Error with a formatted message and no location.
// Callers higher up attach the record and field with At.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// At returns err located at record/field. If err is an *Error, missing location
// parts are filled in; otherwise it is returned unchanged.
func At(err error, record, field string) error {
	var de *Error
	if !errors.As(err, &de) {
		return err
	}

	located := *de
	if located.Record == "" {
		located.Record = record
	}

	if located.Field == "" {
		located.Field = field
	}

	return &located
}

// Error implements the error interface.
func (e *Error) Error() string {
	var loc []string
	if e.Record != "" {
		loc = append(loc, e.Record)
	}

	if e.Field != "" {
		loc = append(loc, e.Field)
	}

	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(loc) > 0 {
		return strings.Join(loc, ".") + ": " + msg
	}

	return msg
}

// Unwrap returns the sentinel for e.Code so errors.Is matches the taxonomy.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// CodeOf returns the Code carried by err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}

	return ""
}
