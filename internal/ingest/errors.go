package ingest

import (
	"errors"
	"fmt"
)

// Kind categorizes an ingestion failure. Every kind is terminal.
type Kind string

const (
	KindInvalidType         Kind = "invalid_type"
	KindInvalidName         Kind = "invalid_name"
	KindDecode              Kind = "decode"
	KindCompressionTooLarge Kind = "compression_too_large"
	KindEncode              Kind = "encode"
)

// User-facing messages, surfaced verbatim by callers.
const (
	msgInvalidType = "File must be an image"
	msgInvalidName = "Filename must contain only English letters, numbers, hyphens, and underscores"
	msgDecode      = "Failed to load image"
	msgTooLarge    = "Image is too large and cannot be compressed below 1MB. Please use a smaller image."
	msgEncode      = "Failed to compress image"
)

// Error is returned for every failed ingestion call.
type Error struct {
	// Kind is the failure category for programmatic handling.
	Kind Kind

	// Message is the human-readable description.
	Message string

	// Err is the underlying platform error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// ErrInvalidType reports a declared media type outside the raster image category.
func ErrInvalidType(mediaType string) *Error {
	return newError(KindInvalidType, msgInvalidType, fmt.Errorf("media type %q", mediaType))
}

// ErrInvalidName reports a filename that fails the character policy.
func ErrInvalidName(name string) *Error {
	return newError(KindInvalidName, msgInvalidName, fmt.Errorf("filename %q", name))
}

// ErrDecode wraps a failure to decode the payload as a bitmap.
func ErrDecode(err error) *Error {
	return newError(KindDecode, msgDecode, err)
}

// ErrCompressionTooLarge reports that no ladder rung met Budget.
func ErrCompressionTooLarge(smallest int64) *Error {
	return newError(KindCompressionTooLarge, msgTooLarge,
		fmt.Errorf("smallest attempt %d bytes exceeds budget %d", smallest, Budget))
}

// ErrEncode wraps an encoder failure with a generic message.
func ErrEncode(err error) *Error {
	return newError(KindEncode, msgEncode, err)
}

// KindOf returns the kind of an ingestion error, or "" for other errors.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

// IsKind reports whether err is an ingestion error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the user-facing text of err, or fallback when err is
// not an ingestion error.
func Message(err error, fallback string) string {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Message
	}
	return fallback
}
