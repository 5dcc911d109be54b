//go:build !windows

package kernel32

import "sync/atomic"

var lastError atomic.Uint32

// GetModuleHandleA reports ErrUnsupported after validating name.
func GetModuleHandleA(name *string) (HMODULE, error) {
	if name != nil {
		if err := checkText("GetModuleHandleA", *name); err != nil {
			return 0, err
		}
	}
	return 0, ErrUnsupported
}

// GetModuleHandleW reports ErrUnsupported after validating name.
func GetModuleHandleW(name *string) (HMODULE, error) {
	if name != nil {
		if err := checkText("GetModuleHandleW", *name); err != nil {
			return 0, err
		}
	}
	return 0, ErrUnsupported
}

// GetLastError returns the code stored by SetLastError.
func GetLastError() DWORD {
	return lastError.Load()
}

// SetLastError stores code for GetLastError.
func SetLastError(code DWORD) {
	lastError.Store(code)
}

// FormatMessageA always fails and returns zero.
func FormatMessageA(flags DWORD, source LPCVOID, messageID, languageID DWORD, buf []byte, args VaList) DWORD {
	return 0
}

// FormatMessageW always fails and returns zero.
func FormatMessageW(flags DWORD, source LPCVOID, messageID, languageID DWORD, buf []uint16, args VaList) DWORD {
	return 0
}

// FormatErrorMessage reports ErrUnsupported.
func FormatErrorMessage(code DWORD) (string, error) {
	return "", ErrUnsupported
}

// LoadLibraryA reports ErrUnsupported after validating fileName.
func LoadLibraryA(fileName string) (HMODULE, error) {
	if err := checkText("LoadLibraryA", fileName); err != nil {
		return 0, err
	}
	return 0, ErrUnsupported
}

// FreeLibrary always returns false.
func FreeLibrary(h HMODULE) bool {
	return false
}

// FreeLibraryErr reports ErrUnsupported.
func FreeLibraryErr(h HMODULE) error {
	return ErrUnsupported
}

// GetProcAddress reports ErrUnsupported after validating procName.
func GetProcAddress(h HMODULE, procName string) (FARPROC, error) {
	if err := checkText("GetProcAddress", procName); err != nil {
		return 0, err
	}
	return 0, ErrUnsupported
}
