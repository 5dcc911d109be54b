//go:build windows

package kernel32

import (
	"sync"

	"golang.org/x/sys/windows"
)

// lastErrors holds the most recent error code per OS thread id.
var lastErrors sync.Map

func recordLastError(code DWORD) {
	lastErrors.Store(windows.GetCurrentThreadId(), code)
}

// GetLastError returns the error code recorded by the most recent call this
// package made on the current OS thread. It never fails and returns
// ERROR_SUCCESS when no call has been recorded on the thread.
func GetLastError() DWORD {
	v, ok := lastErrors.Load(windows.GetCurrentThreadId())
	if !ok {
		return ERROR_SUCCESS
	}
	return v.(DWORD)
}

// SetLastError overwrites the error code recorded for the current OS thread.
func SetLastError(code DWORD) {
	recordLastError(code)
}
