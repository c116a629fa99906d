// Package paletteerr defines the error taxonomy for the palette extraction
// engine: sentinel errors for programmatic checks via errors.Is, and a
// single wrapping type that carries stage context.
package paletteerr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a fatal extraction failure.
type Kind string

const (
	// KindInvalidImage indicates the decoder could not parse the image bytes.
	KindInvalidImage Kind = "invalid_image"

	// KindEmptyInput indicates the pixel stage produced zero usable pixels.
	KindEmptyInput Kind = "empty_input"

	// KindCancelled indicates the cancellation token tripped mid-extraction.
	KindCancelled Kind = "cancelled"

	// KindInternalInvariant indicates a bug: an invariant the pipeline
	// assumes was violated.
	KindInternalInvariant Kind = "internal_invariant"
)

// Sentinel errors for recoverable conditions that are handled in-stage and
// never surface as a fatal ExtractionError, exposed so tests and callers
// can assert on the specific failure with errors.Is.
var (
	// ErrSegmentationUnavailable indicates the segmentation provider
	// returned no usable result after retry; the adapter falls back to
	// luminance-based masking rather than failing.
	ErrSegmentationUnavailable = errors.New("segmentation provider unavailable")

	// ErrMaskDecode indicates a single segment's mask image failed to
	// decode; that segment is skipped and composition continues.
	ErrMaskDecode = errors.New("segment mask decode failed")
)

// ExtractionError is the single fatal error type extract() returns.
// Context carries stage-specific key/value detail (e.g. "width", "height").
type ExtractionError struct {
	Kind    Kind
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/errors.As.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// New builds an ExtractionError with no wrapped cause.
func New(kind Kind, message string, context map[string]any) *ExtractionError {
	return &ExtractionError{Kind: kind, Message: message, Context: context}
}

// Wrap builds an ExtractionError around an underlying cause.
func Wrap(kind Kind, message string, err error, context map[string]any) *ExtractionError {
	return &ExtractionError{Kind: kind, Message: message, Context: context, Err: err}
}

// InvalidImage builds a KindInvalidImage error.
func InvalidImage(err error) *ExtractionError {
	return Wrap(KindInvalidImage, "failed to decode image", err, nil)
}

// EmptyInput builds a KindEmptyInput error.
func EmptyInput(reason string) *ExtractionError {
	return New(KindEmptyInput, reason, nil)
}

// Cancelled builds a KindCancelled error.
func Cancelled() *ExtractionError {
	return New(KindCancelled, "extraction cancelled", nil)
}

// InternalInvariant builds a KindInternalInvariant error.
func InternalInvariant(message string) *ExtractionError {
	return New(KindInternalInvariant, message, nil)
}
