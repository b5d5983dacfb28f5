package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the error kind reported by every ValidationError
const Kind = "SchemaValidation"

// Issue describes a single rule violation inside a payload
type Issue struct {
	Path    string `json:"path"` // e.g. "[2].nutritionFacts.calories"; empty for the payload root
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError is returned when a payload does not match the required shape.
// It is structural and never carries business meaning.
type ValidationError struct {
	Target string  `json:"target"` // what was being validated, e.g. "snack", "checkout request"
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s: %s", e.Target, strings.Join(parts, "; "))
}

// Kind returns the error kind
func (e *ValidationError) Kind() string {
	return Kind
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// issueList collects issues under a path prefix
type issueList struct {
	prefix string
	issues []Issue
}

func (l *issueList) add(field, message string) {
	l.issues = append(l.issues, Issue{Path: joinPath(l.prefix, field), Message: message})
}

func (l *issueList) err(target string) error {
	if len(l.issues) == 0 {
		return nil
	}
	return &ValidationError{Target: target, Issues: l.issues}
}

func joinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	case strings.HasPrefix(field, "["):
		return prefix + field
	default:
		return prefix + "." + field
	}
}

func indexPath(i int) string {
	return fmt.Sprintf("[%d]", i)
}
