package dial

import (
	"fmt"
	"strings"
)

// ErrorKind identifies which validation step rejected a command.
type ErrorKind int

const (
	// InvalidFormat: the line is empty, too short, or has no valid direction.
	InvalidFormat ErrorKind = iota + 1
	// ParseError: the magnitude is not a base-10 unsigned integer.
	ParseError
	// InvalidSteps: the magnitude parsed but is zero.
	InvalidSteps
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid format"
	case ParseError:
		return "parse error"
	case InvalidSteps:
		return "invalid steps"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidFormat = &Error{Kind: InvalidFormat}
	ErrParse         = &Error{Kind: ParseError}
	ErrInvalidSteps  = &Error{Kind: InvalidSteps}
)

// Error is the single error type returned by the parser and the simulator.
// Callers branch on Kind (or errors.Is against the sentinels above) instead
// of matching message text.
type Error struct {
	Kind ErrorKind
	Line int    // 1-based input line, 0 when the command did not come from Parse
	Text string // offending line as read, untrimmed
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	sb.WriteString(e.Kind.String())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap exposes the underlying strconv error for ParseError.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
