package evaluation

import (
	"fmt"
	"strings"
)

var (
	// ErrType is matched (via errors.Is) by every KindType error: an input
	// parameter has the wrong fundamental type.
	ErrType = fmt.Errorf("type error")

	// ErrValue is matched (via errors.Is) by every KindValue error: a record is
	// malformed or the threshold is negative.
	ErrValue = fmt.Errorf("value error")
)

// Kind classifies evaluation failures.
type Kind int

const (
	// KindType reports a parameter of the wrong type.
	KindType Kind = iota + 1
	// KindValue reports a structural or content violation.
	KindValue
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Error describes why an evaluation was rejected.
type Error struct {
	Kind  Kind   // KindType or KindValue
	Param string // predictions, references or threshold
	Index int    // Record position inside Param, -1 when not applicable
	Msg   string // Human-readable description of the violation
	Err   error  // Underlying cause (e.g. a JSON syntax error), may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Param)
	if e.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Index)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of this error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == KindType
	case ErrValue:
		return e.Kind == KindValue
	}
	return false
}

func newTypeError(param string, format string, args ...any) *Error {
	return &Error{Kind: KindType, Param: param, Index: -1, Msg: fmt.Sprintf(format, args...)}
}

func newValueError(param string, index int, cause error, format string, args ...any) *Error {
	return &Error{Kind: KindValue, Param: param, Index: index, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// typeName renders the dynamic type of v for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
