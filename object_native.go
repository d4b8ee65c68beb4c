//go:build !js

package formic

import "fmt"

// NewObject constructs a synthetic JavaScript object for native builds. It
// stands in for an event target or any other property bag when no browser is
// present, e.g. in handler tests.
func NewObject(props map[string]interface{}) SyscallJSValue {
	obj := &objectValue{props: map[string]jsObject{}}
	for k, v := range props {
		obj.Set(k, v)
	}
	return SyscallJSValue(obj)
}

// objectValue is a property bag satisfying jsObject. Values are wrapped on
// Set, so Get hands back the same wrapper types the gost-dom glue produces.
type objectValue struct {
	props map[string]jsObject
}

func (o *objectValue) Set(key string, value interface{}) {
	if o.props == nil {
		o.props = map[string]jsObject{}
	}
	o.props[key] = scalarToJS(value)
}

func (o *objectValue) Get(key string) jsObject {
	return o.props[key]
}

func (o *objectValue) Delete(key string) {
	delete(o.props, key)
}

func (o *objectValue) Call(string, ...interface{}) jsObject { return nil }
func (o *objectValue) String() string                       { return fmt.Sprintf("[object len=%d]", len(o.props)) }
func (o *objectValue) Truthy() bool                         { return true }
func (o *objectValue) Equal(other jsObject) bool {
	o2, ok := other.(*objectValue)
	return ok && o == o2
}
func (*objectValue) IsUndefined() bool { return false }
func (*objectValue) Bool() bool        { return true }
func (*objectValue) Int() int          { return 0 }
func (*objectValue) Float() float64    { return 0 }

// scalarToJS wraps a Go value in the matching jsObject implementation.
func scalarToJS(value interface{}) jsObject {
	switch v := value.(type) {
	case nil:
		return nil
	case jsObject:
		return v
	case string:
		return &stringObject{s: v}
	case bool:
		return &boolValue{b: v}
	case int:
		return &floatObject{f: float64(v)}
	case int32:
		return &floatObject{f: float64(v)}
	case int64:
		return &floatObject{f: float64(v)}
	case float32:
		return &floatObject{f: float64(v)}
	case float64:
		return &floatObject{f: v}
	case map[string]interface{}:
		child := &objectValue{props: map[string]jsObject{}}
		for key, val := range v {
			child.Set(key, val)
		}
		return child
	default:
		return &stringObject{s: fmt.Sprint(v)}
	}
}

// boolValue adapts a bool to jsObject.
type boolValue struct{ b bool }

func (b *boolValue) Set(string, interface{})              {}
func (b *boolValue) Get(string) jsObject                  { return nil }
func (b *boolValue) Delete(string)                        {}
func (b *boolValue) Call(string, ...interface{}) jsObject { return nil }
func (b *boolValue) String() string                       { return fmt.Sprintf("%t", b.b) }
func (b *boolValue) Truthy() bool                         { return b.b }
func (b *boolValue) Equal(o jsObject) bool {
	b2, ok := o.(*boolValue)
	return ok && b.b == b2.b
}
func (*boolValue) IsUndefined() bool { return false }
func (b *boolValue) Bool() bool      { return b.b }
func (b *boolValue) Int() int {
	if b.b {
		return 1
	}
	return 0
}
func (b *boolValue) Float() float64 {
	if b.b {
		return 1
	}
	return 0
}
