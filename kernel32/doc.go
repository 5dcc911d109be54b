// Package kernel32 wraps the module-loading and error-reporting entry points
// of kernel32.dll without CGO.
//
// Every wrapper converts the loader's raw failure sentinels (NULL handles,
// FALSE, NULL procedure addresses) into Go error values. Text arguments are
// converted to NUL-terminated buffers before the call; text that contains an
// embedded NUL is rejected with a *ConversionError and the entry point is
// never invoked.
//
// Handles returned by this package are opaque. The package does not track
// module reference counts: a handle obtained from GetModuleHandleW may be
// invalidated at any time by another goroutine calling FreeLibrary, and a
// handle passed to FreeLibrary must not be used again once its reference
// count reaches zero.
//
// The Go runtime resets the OS thread's last-error value around every foreign
// call, so GetLastError reports the code recorded by the most recent call this
// package made on the current OS thread. Pin the goroutine with
// runtime.LockOSThread when the value must survive between calls.
//
// On platforms other than Windows every loader call fails with ErrUnsupported.
package kernel32
