package terse

import (
	"errors"
	"fmt"
)

// Kind categorizes codec failures. All kinds are local validation
// failures detected before or during parsing; none is retryable.
type Kind string

const (
	KindSizeExceeded    Kind = "size_exceeded"    // decode input over the size cap
	KindInvalidFormat   Kind = "invalid_format"   // input fails the grammar
	KindDepthExceeded   Kind = "depth_exceeded"   // nesting beyond MaxDepth
	KindMalformedHeader Kind = "malformed_header" // header pair missing its separator
)

// Sentinel values for errors.Is checks.
var (
	ErrSizeExceeded    = errors.New("size exceeded")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrDepthExceeded   = errors.New("depth exceeded")
	ErrMalformedHeader = errors.New("malformed header")
)

// Error is a codec failure with its location in the input. Offset is
// the byte offset into the original document where the failure was
// detected (0 for whole-input checks such as the size cap).
type Error struct {
	Kind   Kind
	Offset int
	msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("terse: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSizeExceeded:
		return e.Kind == KindSizeExceeded
	case ErrInvalidFormat:
		return e.Kind == KindInvalidFormat
	case ErrDepthExceeded:
		return e.Kind == KindDepthExceeded
	case ErrMalformedHeader:
		return e.Kind == KindMalformedHeader
	}
	return false
}

func codecErr(kind Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, msg: fmt.Sprintf(format, args...)}
}
