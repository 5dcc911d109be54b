//go:build windows

package kernel32

import (
	"errors"
	"runtime"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetModuleHandleA = modkernel32.NewProc("GetModuleHandleA")
	procGetModuleHandleW = modkernel32.NewProc("GetModuleHandleW")
	procFormatMessageA   = modkernel32.NewProc("FormatMessageA")
	procFormatMessageW   = modkernel32.NewProc("FormatMessageW")
	procLoadLibraryA     = modkernel32.NewProc("LoadLibraryA")
	procFreeLibrary      = modkernel32.NewProc("FreeLibrary")
	procGetProcAddress   = modkernel32.NewProc("GetProcAddress")
)

// GetModuleHandleA returns the handle of a module already mapped into the
// process. A nil name selects the executable that created the process.
//
// The returned handle is not reference counted and must not be passed to
// FreeLibrary.
func GetModuleHandleA(name *string) (HMODULE, error) {
	var arg []byte
	if name != nil {
		var err error
		if arg, err = cString("GetModuleHandleA", *name); err != nil {
			return 0, err
		}
	}
	r1, _, errno := procGetModuleHandleA.Call(uintptr(bytesPtr(arg)))
	runtime.KeepAlive(arg)
	recordErrno(errno)
	if r1 == 0 {
		return 0, callError("GetModuleHandleA", errno)
	}
	return HMODULE(r1), nil
}

// GetModuleHandleW returns the handle of a module already mapped into the
// process. A nil name selects the executable that created the process; the
// loader receives a NULL pointer in that case, never an empty string.
//
// The name is compared case-insensitively against the modules currently
// mapped; a missing extension defaults to ".dll". The handle is not
// reference counted and must not be passed to FreeLibrary. Nothing prevents
// another goroutine from unloading the module after the handle is returned,
// after which the handle value may be reused by an unrelated module.
func GetModuleHandleW(name *string) (HMODULE, error) {
	var arg []uint16
	if name != nil {
		var err error
		if arg, err = windows.UTF16FromString(*name); err != nil {
			return 0, &ConversionError{Op: "GetModuleHandleW", Offset: strings.IndexByte(*name, 0)}
		}
	}
	r1, _, errno := procGetModuleHandleW.Call(uintptr(uint16Ptr(arg)))
	runtime.KeepAlive(arg)
	recordErrno(errno)
	if r1 == 0 {
		return 0, callError("GetModuleHandleW", errno)
	}
	return HMODULE(r1), nil
}

// FormatMessageA formats a message into buf and returns the number of bytes
// written, excluding the terminating NUL. Zero means failure; the reason is
// available from GetLastError. Arguments are passed to the loader unchecked.
func FormatMessageA(flags DWORD, source LPCVOID, messageID, languageID DWORD, buf []byte, args VaList) DWORD {
	r1, _, errno := procFormatMessageA.Call(
		uintptr(flags),
		uintptr(source),
		uintptr(messageID),
		uintptr(languageID),
		uintptr(bytesPtr(buf)),
		uintptr(len(buf)),
		uintptr(args),
	)
	runtime.KeepAlive(buf)
	recordErrno(errno)
	return DWORD(r1)
}

// FormatMessageW is the UTF-16 variant of FormatMessageA. The result counts
// UTF-16 code units.
func FormatMessageW(flags DWORD, source LPCVOID, messageID, languageID DWORD, buf []uint16, args VaList) DWORD {
	n, _ := formatMessageW(flags, source, messageID, languageID, buf, args)
	return n
}

func formatMessageW(flags DWORD, source LPCVOID, messageID, languageID DWORD, buf []uint16, args VaList) (DWORD, error) {
	r1, _, errno := procFormatMessageW.Call(
		uintptr(flags),
		uintptr(source),
		uintptr(messageID),
		uintptr(languageID),
		uintptr(uint16Ptr(buf)),
		uintptr(len(buf)),
		uintptr(args),
	)
	runtime.KeepAlive(buf)
	recordErrno(errno)
	return DWORD(r1), errno
}

// FormatErrorMessage returns the system message text for code.
func FormatErrorMessage(code DWORD) (string, error) {
	buf := make([]uint16, messageBufferSize)
	n, errno := formatMessageW(
		FORMAT_MESSAGE_FROM_SYSTEM|FORMAT_MESSAGE_IGNORE_INSERTS,
		nil,
		code,
		MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT),
		buf,
		nil,
	)
	if n == 0 {
		return "", callError("FormatMessageW", errno)
	}
	return trimMessage(windows.UTF16ToString(buf[:n])), nil
}

// LoadLibraryA maps fileName into the process and increments its reference
// count. Every successful call must be balanced by one FreeLibrary.
func LoadLibraryA(fileName string) (HMODULE, error) {
	arg, err := cString("LoadLibraryA", fileName)
	if err != nil {
		return 0, err
	}
	r1, _, errno := procLoadLibraryA.Call(uintptr(bytesPtr(arg)))
	runtime.KeepAlive(arg)
	recordErrno(errno)
	if r1 == 0 {
		return 0, callError("LoadLibraryA", errno)
	}
	return HMODULE(r1), nil
}

// FreeLibrary decrements the reference count of h, unmapping the module when
// it reaches zero. It reports whether the loader accepted the handle.
func FreeLibrary(h HMODULE) bool {
	return FreeLibraryErr(h) == nil
}

// FreeLibraryErr is FreeLibrary with the failure code attached.
func FreeLibraryErr(h HMODULE) error {
	r1, _, errno := procFreeLibrary.Call(uintptr(h))
	recordErrno(errno)
	if BOOL(r1) == FALSE {
		return callError("FreeLibrary", errno)
	}
	return nil
}

// GetProcAddress returns the address of the exported procedure procName in
// module h.
func GetProcAddress(h HMODULE, procName string) (FARPROC, error) {
	arg, err := cString("GetProcAddress", procName)
	if err != nil {
		return 0, err
	}
	r1, _, errno := procGetProcAddress.Call(uintptr(h), uintptr(bytesPtr(arg)))
	runtime.KeepAlive(arg)
	recordErrno(errno)
	if r1 == 0 {
		return 0, callError("GetProcAddress", errno)
	}
	return FARPROC(r1), nil
}

// recordErrno stores the code captured by a LazyProc.Call for GetLastError.
// Unless the goroutine is locked to its OS thread it may have migrated since
// the call, in which case the code is recorded against the new thread.
func recordErrno(err error) {
	var errno syscall.Errno
	_ = errors.As(err, &errno)
	recordLastError(DWORD(errno))
}

// bytesPtr returns the address of the first element of b, or nil.
func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

// uint16Ptr returns the address of the first element of b, or nil.
func uint16Ptr(b []uint16) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}
