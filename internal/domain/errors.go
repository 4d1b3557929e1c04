package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per ErrorKind. errors.Is matches an *OpError against
// the sentinel of its kind.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownDay    = errors.New("unknown day")
	ErrExecution     = errors.New("execution error")
)

type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindUnknownDay    ErrorKind = "unknown_day"
	KindExecution     ErrorKind = "execution"
)

var sentinels = map[ErrorKind]error{
	KindNotFound:      ErrNotFound,
	KindInvalidInput:  ErrInvalidInput,
	KindInvalidConfig: ErrInvalidConfig,
	KindUnknownDay:    ErrUnknownDay,
	KindExecution:     ErrExecution,
}

// OpError records the failing operation ("fsinput.load", "day05.parse"),
// its kind and, when a file was involved, its path.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.Path != "" {
		fmt.Fprintf(&b, " (path=%s)", e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// InvalidInput builds the error puzzle parsers return for malformed input.
func InvalidInput(op string, err error) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Err:  err,
	}
}
