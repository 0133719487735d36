package ecv1

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMalformedHeader indicates the first line is not the literal "EC v1".
	ErrMalformedHeader = errors.New("malformed header")

	// ErrInvalidLineCount indicates fewer than three non-blank lines.
	ErrInvalidLineCount = errors.New("invalid line count")

	// ErrMissingTransformChain indicates the metadata line has no t= entry.
	ErrMissingTransformChain = errors.New("missing transform chain")

	// ErrUnknownTransform indicates a chain token outside the known vocabulary.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrInvalidChain indicates a chain with no tokens.
	ErrInvalidChain = errors.New("invalid transform chain")

	// ErrBase64Decode indicates the b64 inverse saw invalid alphabet or padding.
	ErrBase64Decode = errors.New("base64 decode failed")

	// ErrCompression indicates the gz forward transform failed.
	ErrCompression = errors.New("compression failed")

	// ErrDecompression indicates the gz inverse saw corrupt or truncated input.
	ErrDecompression = errors.New("decompression failed")

	// ErrJSONParse indicates the payload text is not valid JSON.
	ErrJSONParse = errors.New("json parse failed")

	// ErrJSONSerialize indicates the value could not be encoded as JSON.
	ErrJSONSerialize = errors.New("json serialize failed")

	// ErrNonTextSafePayload indicates the final payload cannot be framed as text.
	ErrNonTextSafePayload = errors.New("payload is not text-safe")

	// ErrInvalidContentType indicates a content type that would corrupt the metadata line.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrUnsupportedValue indicates an opaque codec was given a value that is not text.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// FrameError represents a structural envelope error.
// It wraps a sentinel error with the line it was detected on.
type FrameError struct {
	Err    error  // Underlying sentinel error (ErrMalformedHeader, etc.)
	Line   int    // 1-based line number in the input, 0 when not applicable
	Detail string // Offending content or counts
}

func (e *FrameError) Error() string {
	switch {
	case e.Line > 0 && e.Detail != "":
		return fmt.Sprintf("%s at line %d: %s", e.Err.Error(), e.Line, e.Detail)
	case e.Line > 0:
		return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
	}
	return e.Err.Error()
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// TransformError represents a failure while applying one chain stage.
type TransformError struct {
	Err       error     // Underlying sentinel error (ErrUnknownTransform, ErrDecompression, etc.)
	Transform string    // Chain token that failed
	Stage     int       // Index of the token within the chain
	Direction Direction // forward or inverse
	Cause     error     // Original error from the transform
}

func (e *TransformError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Err.Error(), e.Transform)
	if e.Direction != "" {
		msg = fmt.Sprintf("%s: %s %q (stage %d)", e.Err.Error(), e.Direction, e.Transform, e.Stage)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a serialize/deserialize error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrJSONParse, ErrJSONSerialize, ErrUnsupportedValue)
	ContentType string // Content type being processed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (ct=%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (ct=%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newFrameError creates a FrameError for envelope structure failures.
func newFrameError(sentinel error, line int, detail string) error {
	return &FrameError{
		Err:    sentinel,
		Line:   line,
		Detail: detail,
	}
}

// newTransformError creates a TransformError for a failing chain stage.
func newTransformError(sentinel error, token string, stage int, dir Direction, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Transform: token,
		Stage:     stage,
		Direction: dir,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for serialize/deserialize failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
