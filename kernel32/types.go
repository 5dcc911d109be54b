package kernel32

import "unsafe"

// DWORD is the 32-bit unsigned integer used by kernel32 for flags, ids and
// error codes.
type DWORD = uint32

// BOOL is the 32-bit Win32 boolean. Zero is FALSE.
type BOOL = int32

// HMODULE is an opaque, pointer-width module handle.
type HMODULE uintptr

// FARPROC is the address of an exported procedure. The package never checks
// its signature; callers bind it with the correct calling convention.
type FARPROC uintptr

// LPCVOID is an untyped pointer passed through to the loader unchanged.
type LPCVOID = unsafe.Pointer

// VaList is a pointer to a caller-prepared argument list for FormatMessage.
type VaList = unsafe.Pointer

const (
	FALSE BOOL = 0
	TRUE  BOOL = 1
)

// Error codes returned by the entry points wrapped in this package.
const (
	ERROR_SUCCESS             DWORD = 0
	ERROR_FILE_NOT_FOUND      DWORD = 2
	ERROR_INVALID_HANDLE      DWORD = 6
	ERROR_INVALID_PARAMETER   DWORD = 87
	ERROR_INSUFFICIENT_BUFFER DWORD = 122
	ERROR_MOD_NOT_FOUND       DWORD = 126
	ERROR_PROC_NOT_FOUND      DWORD = 127
	ERROR_BAD_EXE_FORMAT      DWORD = 193
	ERROR_MR_MID_NOT_FOUND    DWORD = 317
)

// FormatMessage flags.
const (
	FORMAT_MESSAGE_ALLOCATE_BUFFER DWORD = 0x00000100
	FORMAT_MESSAGE_IGNORE_INSERTS  DWORD = 0x00000200
	FORMAT_MESSAGE_FROM_STRING     DWORD = 0x00000400
	FORMAT_MESSAGE_FROM_HMODULE    DWORD = 0x00000800
	FORMAT_MESSAGE_FROM_SYSTEM     DWORD = 0x00001000
	FORMAT_MESSAGE_ARGUMENT_ARRAY  DWORD = 0x00002000
	FORMAT_MESSAGE_MAX_WIDTH_MASK  DWORD = 0x000000FF
)

// Language identifiers.
const (
	LANG_NEUTRAL    DWORD = 0x00
	LANG_ENGLISH    DWORD = 0x09
	SUBLANG_NEUTRAL DWORD = 0x00
	SUBLANG_DEFAULT DWORD = 0x01
)

// MAKELANGID builds a language identifier from a primary and sub language.
func MAKELANGID(primary, sub DWORD) DWORD {
	return (sub << 10) | primary
}
