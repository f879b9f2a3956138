package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrConflict          = errors.New("conflict")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrForbidden         = errors.New("forbidden")
)

// IsValidation reports whether err belongs to the validation family
// (required, invalid, out of range, fields not allowed).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// sanitize flattens a value into a single log-safe line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError is returned when a lookup by identifier yields nothing,
// or when the object exists but is invisible to the caller.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// FieldsNotAllowedError lists the field names a caller supplied but may not change.
// Fields holds the set difference provided minus Allowed, sorted.
type FieldsNotAllowedError struct {
	Fields  []string
	Allowed []string
}

func NewFieldsNotAllowedError(fields, allowed []string) *FieldsNotAllowedError {
	return &FieldsNotAllowedError{Fields: fields, Allowed: allowed}
}

func (e *FieldsNotAllowedError) Error() string {
	return fmt.Sprintf("%s: only %s may be updated, invalid fields: %s",
		ErrValueIsInvalid, strings.Join(e.Allowed, ", "), strings.Join(e.Fields, ", "))
}

func (e *FieldsNotAllowedError) Unwrap() error {
	return ErrValueIsInvalid
}

// ConflictError is returned when a unique constraint rejects a write.
type ConflictError struct {
	ParamName string
	Cause     error
}

func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s already exists (cause: %v)", ErrConflict, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s already exists", ErrConflict, e.ParamName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// DenialKind classifies an authorization failure.
type DenialKind int

const (
	// DeniedUnauthenticated means the caller presented no valid identity.
	DeniedUnauthenticated DenialKind = iota + 1
	// DeniedForbidden means the caller is known but lacks role or ownership.
	DeniedForbidden
	// DeniedHidden means the resource is masked from the caller and reported as not found.
	DeniedHidden
)

func (k DenialKind) String() string {
	switch k {
	case DeniedUnauthenticated:
		return "unauthenticated"
	case DeniedForbidden:
		return "forbidden"
	case DeniedHidden:
		return "not found"
	default:
		return "unknown"
	}
}

// AccessDeniedError is the Deny outcome of an authorization check.
// It unwraps to ErrUnauthenticated, ErrForbidden or ErrObjectNotFound by kind.
type AccessDeniedError struct {
	Kind   DenialKind
	Reason string
}

func NewUnauthenticatedError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Kind: DeniedUnauthenticated, Reason: reason}
}

func NewForbiddenError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Kind: DeniedForbidden, Reason: reason}
}

func NewHiddenError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Kind: DeniedHidden, Reason: reason}
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Unwrap(), e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	switch e.Kind {
	case DeniedUnauthenticated:
		return ErrUnauthenticated
	case DeniedHidden:
		return ErrObjectNotFound
	case DeniedForbidden:
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
