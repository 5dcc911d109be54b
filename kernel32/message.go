package kernel32

import "strings"

// messageBufferSize is the largest message FormatErrorMessage returns, in
// UTF-16 code units. System messages are far shorter.
const messageBufferSize = 512

// trimMessage drops the line terminator the system appends to message table
// entries.
func trimMessage(s string) string {
	return strings.TrimRight(s, "\r\n")
}
