// Package errors provides classified error primitives used across homegen.
//
// Errors carry a broad category used at pipeline boundaries to decide whether
// a failure aborts the page build (render, html) or degrades gracefully
// (network, not_found). Inside packages, ordinary fmt.Errorf wrapping is the
// norm; classification happens where the pipeline makes decisions.
package errors

import (
	"errors"
	"fmt"
)

// Category represents the broad classification of an error.
type Category string

const (
	// CategoryConfig represents user-facing configuration and input errors.
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryMetadata   Category = "metadata"
	CategoryNotFound   Category = "not_found"

	// CategoryNetwork represents external system integration errors.
	CategoryNetwork Category = "network"

	// CategoryRender represents rendering and post-processing errors.
	CategoryRender     Category = "render"
	CategoryHTML       Category = "html"
	CategoryFileSystem Category = "filesystem"
)

// ClassifiedError is an error with a category and optional structured context.
type ClassifiedError struct {
	category Category
	message  string
	cause    error
	context  map[string]any
}

// New creates a classified error without a cause.
func New(category Category, message string) *ClassifiedError {
	return &ClassifiedError{category: category, message: message}
}

// Wrap creates a classified error wrapping an underlying cause.
func Wrap(err error, category Category, message string) *ClassifiedError {
	return &ClassifiedError{category: category, message: message, cause: err}
}

// Error implements the standard error interface.
func (e *ClassifiedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.category, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.category, e.message)
}

// Unwrap implements Go 1.13+ error unwrapping.
func (e *ClassifiedError) Unwrap() error { return e.cause }

// Category returns the error category.
func (e *ClassifiedError) Category() Category { return e.category }

// Message returns the error message without category prefix or cause.
func (e *ClassifiedError) Message() string { return e.message }

// Context returns the structured context attached to the error.
func (e *ClassifiedError) Context() map[string]any { return e.context }

// WithContext attaches a context key-value pair and returns the error.
func (e *ClassifiedError) WithContext(key string, value any) *ClassifiedError {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// CategoryOf returns the category of the first ClassifiedError in err's chain,
// or the empty category when none is present.
func CategoryOf(err error) Category {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ""
}

// IsCategory reports whether err's chain contains a ClassifiedError of the
// given category.
func IsCategory(err error, category Category) bool {
	return CategoryOf(err) == category
}
