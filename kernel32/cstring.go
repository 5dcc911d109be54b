package kernel32

import "strings"

// checkText rejects strings that would be truncated by the loader.
func checkText(op, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &ConversionError{Op: op, Offset: i}
	}
	return nil
}

// cString converts s to a NUL-terminated byte slice. The caller must keep the
// returned slice alive until the loader has finished reading it.
func cString(op, s string) ([]byte, error) {
	if err := checkText(op, s); err != nil {
		return nil, err
	}
	return append([]byte(s), 0), nil
}
