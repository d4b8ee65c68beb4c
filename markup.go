package formic

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// MarkupOrChild represents one of:
//
//	Component
//	*HTML
//	List
//	MarkupList
//	nil
type MarkupOrChild interface{}

// Applyer represents some type of markup (a style, property, data, etc) which
// can be applied to a given HTML element or text node.
type Applyer interface {
	// Apply applies the markup to the given HTML element or text node.
	Apply(h *HTML)
}

type markupFunc func(h *HTML)

func (m markupFunc) Apply(h *HTML) { m(h) }

// MarkupList represents a list of Applyer which is individually applied to an
// HTML element or text node.
//
// It may only be created through the Markup function.
type MarkupList struct {
	list []Applyer
}

// Apply implements the Applyer interface.
func (m MarkupList) Apply(h *HTML) {
	for _, a := range m.list {
		if a == nil {
			continue
		}
		a.Apply(h)
	}
}

// Markup wraps a list of Applyer which is individually applied to an HTML
// element or text node.
func Markup(m ...Applyer) MarkupList {
	return MarkupList{list: m}
}

// List represents a list of components or HTML.
type List []ComponentOrHTML

// Tag returns an HTML element with the given tag name. Generally, this
// function is not used directly but rather the elem subpackage (which is type
// safe) is used instead.
func Tag(tag string, m ...MarkupOrChild) *HTML {
	h := &HTML{tag: tag}
	for _, m := range m {
		apply(m, h)
	}
	return h
}

// Text returns a TextNode with the given literal text. Because the returned
// HTML represents a TextNode, the text does not have to be escaped (arbitrary
// user input fed into this function is always safe).
func Text(text string, m ...MarkupOrChild) *HTML {
	h := &HTML{text: text}
	for _, m := range m {
		apply(m, h)
	}
	return h
}

func apply(m MarkupOrChild, h *HTML) {
	switch v := m.(type) {
	case nil:
	case MarkupList:
		v.Apply(h)
	case *HTML, List, Component:
		appendChild(v, h)
	default:
		panic(fmt.Sprintf("formic: invalid markup or child of type %T", m))
	}
}

func appendChild(c ComponentOrHTML, h *HTML) {
	switch v := c.(type) {
	case nil:
	case *HTML:
		if v == nil {
			return
		}
		h.children = append(h.children, v)
	case List:
		for _, child := range v {
			appendChild(child, h)
		}
	case Component:
		h.children = append(h.children, v)
	default:
		panic(fmt.Sprintf("formic: invalid child of type %T", c))
	}
}

// If returns nil if cond is false, otherwise it returns the given children.
func If(cond bool, children ...ComponentOrHTML) ComponentOrHTML {
	if cond {
		return List(children)
	}
	return nil
}

// MarkupIf returns nil if cond is false, otherwise it returns the given markup.
func MarkupIf(cond bool, markup ...Applyer) Applyer {
	if cond {
		return Markup(markup...)
	}
	return nil
}

// Style returns an Applyer which applies the given CSS style.
func Style(key, value string) Applyer {
	return markupFunc(func(h *HTML) {
		h.ensureMaps()
		h.styles[key] = value
	})
}

// Property returns an Applyer which applies the given JavaScript property to
// an HTML element or text node. Generally, this function is not used directly
// but rather the prop subpackage (which is type safe) is used instead.
//
// To set style, use Style. Property panics if key is "style".
func Property(key string, value interface{}) Applyer {
	if key == "style" {
		panic(`formic: Property called with key "style"; must use formic.Style instead`)
	}
	return markupFunc(func(h *HTML) {
		h.ensureMaps()
		h.properties[key] = value
	})
}

// Attribute returns an Applyer which applies the given attribute to an
// element.
//
// In most situations, you should use Property instead. Attribute is
// for attributes that have no property equivalent, such as aria-*.
func Attribute(key string, value interface{}) Applyer {
	return markupFunc(func(h *HTML) {
		h.ensureMaps()
		h.attributes[key] = value
	})
}

// Data returns an Applyer which applies the given data attribute.
func Data(key, value string) Applyer {
	return markupFunc(func(h *HTML) {
		h.ensureMaps()
		h.dataset[key] = value
	})
}

// Class returns an Applyer which applies the provided classes. Each class
// must not contain any whitespace.
func Class(class ...string) Applyer {
	for _, cl := range class {
		if strings.ContainsRune(cl, ' ') {
			panic(fmt.Sprintf(`formic: invalid argument Class(%q) (string may not contain spaces)`, cl))
		}
	}
	return markupFunc(func(h *HTML) {
		h.ensureMaps()
		for _, cl := range class {
			h.classes[cl] = struct{}{}
		}
	})
}

// ClassMap is markup that specifies classes to be applied to an element if
// their boolean value is true.
type ClassMap map[string]bool

// Apply implements the Applyer interface.
func (m ClassMap) Apply(h *HTML) {
	h.ensureMaps()
	for name, active := range m {
		if !active {
			continue
		}
		h.classes[name] = struct{}{}
	}
}

// Namespace is markup that specifies the namespace URI to associate with the
// element. Elements created inside a namespace (e.g. SVG) require it.
func Namespace(uri string) Applyer {
	return markupFunc(func(h *HTML) {
		h.namespace = uri
	})
}

// ScrollIntoView is markup that scrolls the element into the visible area of
// the browser window after it is rendered.
func ScrollIntoView() Applyer {
	return markupFunc(func(h *HTML) {
		h.scrollIntoView = true
	})
}

// UnsafeHTML is markup that renders the raw HTML inside the element, without
// any sanitization.
//
// It is entirely up to the caller to ensure the input HTML is properly
// sanitized; prefer SanitizedHTML for anything derived from user input.
func UnsafeHTML(html string) Applyer {
	return markupFunc(func(h *HTML) {
		h.innerHTML = html
	})
}

// sanitizePolicy is applied to all SanitizedHTML input. The UGC policy keeps
// formatting elements and links while stripping scripts and event handler
// attributes.
var sanitizePolicy = bluemonday.UGCPolicy()

// SanitizedHTML is markup that renders the given HTML inside the element
// after running it through a bluemonday UGC sanitization policy.
func SanitizedHTML(html string) Applyer {
	return markupFunc(func(h *HTML) {
		h.innerHTML = sanitizePolicy.Sanitize(html)
	})
}

// EventListener is markup that specifies a callback function to be invoked
// when the named DOM event is fired.
type EventListener struct {
	Name                string
	Listener            func(*Event)
	callPreventDefault  bool
	callStopPropagation bool
	wrapper             jsFunc
}

// NewEventListener returns a new event listener markup for the named event.
// Generally, this function is not used directly but rather the event
// subpackage (which is type safe) is used instead.
func NewEventListener(name string, listener func(*Event)) *EventListener {
	return &EventListener{
		Name:     name,
		Listener: listener,
	}
}

// PreventDefault prevents the default behavior of the event from occurring.
//
// See https://developer.mozilla.org/en-US/docs/Web/API/Event/preventDefault.
func (l *EventListener) PreventDefault() *EventListener {
	l.callPreventDefault = true
	return l
}

// StopPropagation prevents further propagation of the current event in the
// capturing and bubbling phases.
//
// See https://developer.mozilla.org/en-US/docs/Web/API/Event/stopPropagation.
func (l *EventListener) StopPropagation() *EventListener {
	l.callStopPropagation = true
	return l
}

// Apply implements the Applyer interface.
func (l *EventListener) Apply(h *HTML) {
	h.eventListeners = append(h.eventListeners, l)
}
