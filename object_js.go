//go:build js

package formic

import "syscall/js"

// NewObject constructs a JavaScript object with the provided properties. It
// stands in for an event target or any other property bag, e.g. in handler
// tests.
func NewObject(props map[string]interface{}) SyscallJSValue {
	obj := js.Global().Get("Object").New()
	for k, v := range props {
		obj.Set(k, v)
	}
	return obj
}
