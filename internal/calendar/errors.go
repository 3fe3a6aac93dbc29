package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// Error Types
// =============================================================================

// Issue is one invalid option key or value found while validating a
// configuration.
type Issue struct {
	Key    string `json:"key"`
	Value  any    `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	if i.Value == nil {
		return fmt.Sprintf("%s: %s", i.Key, i.Reason)
	}
	return fmt.Sprintf("%s: %s (got %v)", i.Key, i.Reason, i.Value)
}

// ValidationError reports an invalid factory configuration. It carries every
// offending key/value, not only the first one, and is returned at
// construction time: no partially built variant is ever registered.
type ValidationError struct {
	Calendar string
	Issues   []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("invalid configuration for calendar %q: %s", e.Calendar, strings.Join(parts, "; "))
}

// Keys returns the offending option keys in the order reported.
func (e *ValidationError) Keys() []string {
	keys := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		keys[i] = issue.Key
	}
	return keys
}

// DomainError reports a date component outside the variant's valid range.
type DomainError struct {
	Calendar string
	Field    string // "year", "month", "day", "quarter", "week" or "unit"
	Value    int
	Min, Max int
}

func (e *DomainError) Error() string {
	if e.Min == 0 && e.Max == 0 {
		return fmt.Sprintf("%s: %s %d is not valid", e.Calendar, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s %d out of range %d..%d", e.Calendar, e.Field, e.Value, e.Min, e.Max)
}

// NotDefinedError reports a query that is meaningless for a variant, such as
// week numbering on a calendar configured without week parameters. It is
// returned as data, never raised as a panic.
type NotDefinedError struct {
	Calendar string
	Op       string
}

func (e *NotDefinedError) Error() string {
	return fmt.Sprintf("%s: %s is not defined for this calendar", e.Calendar, e.Op)
}

// IsNotDefined checks if an error reports an operation the variant does not
// model.
func IsNotDefined(err error) bool {
	var nd *NotDefinedError
	return errors.As(err, &nd)
}

// IsDomainError checks if an error reports an out-of-range date component.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// IsValidationError checks if an error reports invalid factory options.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
