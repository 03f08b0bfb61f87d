package ir

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes shader rendering errors.
type ErrorKind uint8

const (
	// ErrInvalidShader indicates the shader description violates a
	// structural contract (bad identifier, wrong system value type,
	// misordered stage interface, misused vocabulary call).
	ErrInvalidShader ErrorKind = iota

	// ErrUnmappedVocabulary indicates a type or intrinsic has no
	// spelling in the target dialect's vocabulary table.
	ErrUnmappedVocabulary

	// ErrMissingBinding indicates a resource or block does not carry
	// binding coordinates for the target dialect.
	ErrMissingBinding

	// ErrLayoutOverflow indicates a block member's resolved offset
	// plus size exceeds the block's declared capacity.
	ErrLayoutOverflow

	// ErrMalformedAssembly indicates entry point assembly was driven
	// out of order or with an inconsistent section.
	ErrMalformedAssembly
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidShader:
		return "InvalidShader"
	case ErrUnmappedVocabulary:
		return "UnmappedVocabulary"
	case ErrMissingBinding:
		return "MissingBinding"
	case ErrLayoutOverflow:
		return "LayoutOverflow"
	case ErrMalformedAssembly:
		return "MalformedAssembly"
	default:
		return "Unknown"
	}
}

// Error represents a shader rendering error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string

	// Entity optionally names the declaration involved (a resource,
	// block, member or IO slot name).
	Entity string

	// Dialect optionally names the dialect being rendered. Empty for
	// dialect-independent failures.
	Dialect string
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := e.Dialect
	if prefix == "" {
		prefix = "shader"
	}
	if e.Entity != "" {
		return fmt.Sprintf("%s %s: %s: %s", prefix, e.Kind, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", prefix, e.Kind, e.Message)
}

// NewError creates a dialect-independent error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
