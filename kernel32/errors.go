package kernel32

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrEmbeddedNUL is matched by every *ConversionError.
	ErrEmbeddedNUL = errors.New("kernel32: text contains an embedded NUL")

	// ErrUnsupported is returned by loader calls on platforms without kernel32.
	ErrUnsupported = fmt.Errorf("kernel32: %w", errors.ErrUnsupported)
)

// CallError reports that an entry point returned its failure sentinel.
// Errno is the last-error code captured immediately after the call.
type CallError struct {
	Op    string
	Errno syscall.Errno
}

func (e *CallError) Error() string {
	if e.Errno == 0 {
		return fmt.Sprintf("kernel32: %s failed", e.Op)
	}
	return fmt.Sprintf("kernel32: %s failed: %v (code %d)", e.Op, e.Errno, uint32(e.Errno))
}

// Unwrap returns the captured errno, or nil when no code was captured.
func (e *CallError) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}
	return e.Errno
}

// Code returns the captured error code as a DWORD.
func (e *CallError) Code() DWORD {
	return DWORD(e.Errno)
}

// ConversionError reports text that cannot be passed to kernel32 as a
// NUL-terminated string. Offset is the byte index of the first NUL.
type ConversionError struct {
	Op     string
	Offset int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("kernel32: %s: text contains NUL at byte %d", e.Op, e.Offset)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrEmbeddedNUL
}

func callError(op string, err error) *CallError {
	var errno syscall.Errno
	_ = errors.As(err, &errno)
	return &CallError{Op: op, Errno: errno}
}
