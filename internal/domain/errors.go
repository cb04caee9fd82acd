package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrSourceNotFound = errors.New("source not found")
	ErrSourceRead     = errors.New("source read error")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrConfigNotFound = errors.New("config not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindSourceNotFound ErrorKind = "source_not_found"
	KindSourceRead     ErrorKind = "source_read"
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindConfigNotFound ErrorKind = "config_not_found"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match the sentinel for the error's kind even when Err
// carries the raw I/O failure.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindSourceNotFound:
		return target == ErrSourceNotFound
	case KindSourceRead:
		return target == ErrSourceRead
	case KindInvalidConfig:
		return target == ErrInvalidConfig
	case KindConfigNotFound:
		return target == ErrConfigNotFound
	}
	return false
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
