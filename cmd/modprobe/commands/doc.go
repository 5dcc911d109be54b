// Package commands defines the modprobe CLI.
//
// Commands
//
//   - load      Open a shared library and resolve symbols in it
//   - handle    Look up the handle of a module already mapped into the process
//   - errmsg    Print the system message for a Windows error code
//
// handle and errmsg talk to kernel32 directly and fail on other platforms.
package commands
