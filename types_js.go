//go:build js

package formic

import "syscall/js"

// SyscallJSValue mirrors syscall/js.Value when building for WebAssembly.
type SyscallJSValue = js.Value
