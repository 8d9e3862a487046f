// Package errors provides a lightweight structured error type (SiteError)
// for category-based classification of build failures in the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a build error for classification
type ErrorCategory string

const (
	// File unreadable or unwritable
	CategoryIO ErrorCategory = "io"
	// Malformed front matter, config document, or data file
	CategoryParse ErrorCategory = "parse"
	// Path escapes the content root or lacks expected structure
	CategoryPath ErrorCategory = "path"
	// Named layout missing or template execution failure
	CategoryTemplate ErrorCategory = "template"
	// Invalid site configuration
	CategoryConfig ErrorCategory = "config"
	// Anything not classified above
	CategoryInternal ErrorCategory = "internal"
)

// SiteError is a structured error carrying a category and the offending path.
type SiteError struct {
	Category ErrorCategory
	Message  string
	Path     string
	Cause    error
}

// Error implements the error interface
func (e *SiteError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Category, e.Message, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Category, e.Message, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// WithPath attaches the offending file path to the error
func (e *SiteError) WithPath(path string) *SiteError {
	e.Path = path
	return e
}

// New creates a new SiteError
func New(category ErrorCategory, message string) *SiteError {
	return &SiteError{Category: category, Message: message}
}

// Wrap creates a new SiteError that wraps an existing error
func Wrap(err error, category ErrorCategory, message string) *SiteError {
	return &SiteError{Category: category, Message: message, Cause: err}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal
// if the error chain contains no SiteError
func GetCategory(err error) ErrorCategory {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Category
	}
	return CategoryInternal
}

// PathOf extracts the offending path from an error chain, if any.
func PathOf(err error) string {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Path
	}
	return ""
}
