package formic

import (
	"reflect"
	"sync"
)

// isTest is set by test harnesses that stand in for a browser environment.
var isTest bool

// jsObject is the subset of a JavaScript value that the renderer needs. Under
// WebAssembly it wraps syscall/js.Value; under native builds it wraps a
// gost-dom node or a synthetic value.
type jsObject interface {
	Set(key string, value interface{})
	Get(key string) jsObject
	Delete(key string)
	Call(name string, args ...interface{}) jsObject
	String() string
	Truthy() bool
	IsUndefined() bool
	Equal(other jsObject) bool
	Bool() bool
	Int() int
	Float() float64
}

// jsFunc is a JavaScript-callable function handle. Wrappers hold one per
// event listener so it can be released when the listener is removed.
type jsFunc interface {
	Release()
}

// Core implements the Context method of the Component interface, and is the
// core/central struct which all Component implementations should embed.
type Core struct {
	prevRender          ComponentOrHTML
	prevRenderComponent Component
	mounted             bool
}

// Context implements the Component interface.
func (c *Core) Context() *Core { return c }

// Component represents a single visual component within an application. To
// define a new component simply implement the Render method and embed the
// Core struct:
//
//	type MyComponent struct {
//		formic.Core
//		... additional component fields (state or properties) ...
//	}
//
//	func (c *MyComponent) Render(send func(formic.Msg)) formic.ComponentOrHTML {
//		... rendering ...
//	}
type Component interface {
	// Render is responsible for building HTML which represents the component.
	// Event handlers close over send to dispatch messages to the program.
	Render(send func(Msg)) ComponentOrHTML

	// Context returns the component's context, which is used internally in
	// order to store the previous component render for diffing.
	Context() *Core
}

// Copier is an optional interface that a Component can implement in order to
// copy itself. Mostly useful for components that store internal state that
// must not be shared between the rendered copy and the live one.
type Copier interface {
	// Copy returns a copy of the component.
	Copy() Component
}

// Mounter is an optional interface that a Component can implement in order to
// receive a callback after the component has been mounted into the DOM.
type Mounter interface {
	// Mount is called directly after the component's node has been attached.
	Mount()
}

// Unmounter is an optional interface that a Component can implement in order
// to receive a callback just before its node is detached from the DOM.
type Unmounter interface {
	// Unmount is called before the component is removed.
	Unmount()
}

// RenderSkipper is an optional interface that a Component can implement in
// order to short-circuit re-renders when nothing observable changed.
type RenderSkipper interface {
	// SkipRender is called with a copy of the component made the last time
	// its Render method was invoked. If it returns true, rendering is
	// skipped and the previous DOM state is left as-is.
	SkipRender(prev Component) bool
}

// ComponentOrHTML represents one of:
//
//	Component
//	*HTML
//	List
//	nil
//
// An unexported method on this interface would prevent external packages from
// satisfying it, but would also prevent the nil case, so it stays empty.
type ComponentOrHTML interface{}

// HTML represents some form of HTML: an element with a specific tag, or some
// literal text (a TextNode).
type HTML struct {
	node jsObject

	namespace, tag, text, innerHTML string
	classes                         map[string]struct{}
	styles, dataset                 map[string]string
	properties, attributes          map[string]interface{}
	eventListeners                  []*EventListener
	children                        []ComponentOrHTML
	scrollIntoView                  bool
}

func (h *HTML) ensureMaps() {
	if h.classes == nil {
		h.classes = make(map[string]struct{})
	}
	if h.styles == nil {
		h.styles = make(map[string]string)
	}
	if h.dataset == nil {
		h.dataset = make(map[string]string)
	}
	if h.properties == nil {
		h.properties = make(map[string]interface{})
	}
	if h.attributes == nil {
		h.attributes = make(map[string]interface{})
	}
}

// createNode creates a fresh DOM node for h, including its properties and
// children.
func (h *HTML) createNode(send func(Msg)) {
	switch {
	case h.tag != "" && h.text != "":
		panic("formic: internal error (only one of HTML.tag or HTML.text may be set)")
	case h.tag == "" && h.innerHTML != "":
		panic("formic: only HTML may have UnsafeHTML attribute")
	case h.tag == "":
		h.node = global().Get("document").Call("createTextNode", h.text)
		return
	case h.namespace != "":
		h.node = global().Get("document").Call("createElementNS", h.namespace, h.tag)
	default:
		h.node = global().Get("document").Call("createElement", h.tag)
	}

	h.reconcileProperties(&HTML{node: h.node})
	for _, child := range h.children {
		switch c := child.(type) {
		case *HTML:
			c.reconcile(nil, send)
			h.node.Call("appendChild", c.node)
		case Component:
			r := renderComponent(c, send)
			h.node.Call("appendChild", r.node)
		}
	}
	if h.scrollIntoView {
		h.node.Call("scrollIntoView")
	}
}

// reconcile patches the DOM to match h, reusing prev's node when the tag and
// namespace are unchanged and replacing it otherwise.
func (h *HTML) reconcile(prev *HTML, send func(Msg)) {
	if h.tag != "" && h.text != "" {
		panic("formic: internal error (only one of HTML.tag or HTML.text may be set)")
	}
	if h.tag == "" && h.innerHTML != "" {
		panic("formic: only HTML may have UnsafeHTML attribute")
	}

	if prev == nil || prev.node == nil || h.tag != prev.tag || h.namespace != prev.namespace {
		h.createNode(send)
		if prev != nil && prev.node != nil {
			replaceNode(h.node, prev.node)
			for _, child := range prev.children {
				unmount(child)
			}
		}
		return
	}

	h.node = prev.node
	if h.tag == "" {
		// Text node: patch the node value in place.
		if h.text != prev.text {
			h.node.Set("nodeValue", h.text)
		}
		return
	}

	h.reconcileProperties(prev)
	h.reconcileChildren(prev, send)
	if h.scrollIntoView {
		h.node.Call("scrollIntoView")
	}
}

// removeProperties clears properties, attributes, classes, dataset entries,
// styles, and event listeners that prev carried but h no longer does. The
// caller has already established that h and prev share a node.
func (h *HTML) removeProperties(prev *HTML) {
	for name := range prev.properties {
		if _, ok := h.properties[name]; !ok {
			h.node.Delete(name)
		}
	}
	for name := range prev.attributes {
		if _, ok := h.attributes[name]; !ok {
			h.node.Call("removeAttribute", name)
		}
	}
	classList := h.node.Get("classList")
	for name := range prev.classes {
		if _, ok := h.classes[name]; !ok {
			classList.Call("remove", name)
		}
	}
	dataset := h.node.Get("dataset")
	for name := range prev.dataset {
		if _, ok := h.dataset[name]; !ok {
			dataset.Delete(name)
		}
	}
	style := h.node.Get("style")
	for name := range prev.styles {
		if _, ok := h.styles[name]; !ok {
			style.Call("removeProperty", name)
		}
	}
	for _, l := range prev.eventListeners {
		if l.wrapper == nil {
			continue
		}
		h.node.Call("removeEventListener", l.Name, l.wrapper)
		l.wrapper.Release()
	}
}

// reconcileChildren diffs children positionally: matching positions are
// patched in place, extra new children are appended, and extra old children
// are removed.
func (h *HTML) reconcileChildren(prev *HTML, send func(Msg)) {
	for i, nextChild := range h.children {
		if i >= len(prev.children) {
			switch c := nextChild.(type) {
			case *HTML:
				c.reconcile(nil, send)
				h.node.Call("appendChild", c.node)
			case Component:
				r := renderComponent(c, send)
				h.node.Call("appendChild", r.node)
			}
			continue
		}
		h.reconcileChild(nextChild, prev.children[i], send)
	}
	for i := len(h.children); i < len(prev.children); i++ {
		old := prev.children[i]
		if n := childNode(old); n != nil {
			h.node.Call("removeChild", n)
		}
		unmount(old)
	}
}

func (h *HTML) reconcileChild(next, prev ComponentOrHTML, send func(Msg)) {
	switch c := next.(type) {
	case *HTML:
		if prevHTML, ok := prev.(*HTML); ok {
			c.reconcile(prevHTML, send)
			return
		}
		// A component was here before; replace its rendered node.
		prevRender := extractHTML(prev)
		c.reconcile(prevRender, send)
		unmount(prev)
	case Component:
		if prevComp, ok := prev.(Component); ok {
			if prevComp == next {
				renderComponent(c, send)
				return
			}
			if sameType(prevComp, c) {
				// A fresh instance of the same component type: adopt the
				// previous render context so its DOM patches in place. The
				// mount moves with it; the stale instance no longer owns one.
				c.Context().prevRender = prevComp.Context().prevRender
				c.Context().prevRenderComponent = prevComp.Context().prevRenderComponent
				c.Context().mounted = prevComp.Context().mounted
				prevComp.Context().mounted = false
				renderComponent(c, send)
				return
			}
		}
		r := renderComponent(c, send)
		if prevRender := extractHTML(prev); prevRender != nil && prevRender.node != nil {
			replaceNode(r.node, prevRender.node)
		}
		unmount(prev)
	}
}

// childNode resolves the DOM node behind a rendered child, or nil.
func childNode(c ComponentOrHTML) jsObject {
	if h := extractHTML(c); h != nil {
		return h.node
	}
	return nil
}

// extractHTML returns the *HTML a ComponentOrHTML resolves to, following
// nested component renders, or nil.
func extractHTML(e ComponentOrHTML) *HTML {
	switch v := e.(type) {
	case *HTML:
		return v
	case Component:
		return extractHTML(v.Context().prevRender)
	}
	return nil
}

// sameType reports whether the two components have identical concrete types.
func sameType(a, b Component) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// copyComponent snapshots a component for later SkipRender comparison, via
// its Copier implementation when present and a shallow copy otherwise.
func copyComponent(c Component) Component {
	if copier, ok := c.(Copier); ok {
		cpy := copier.Copy()
		if cpy == c {
			panic("formic: Component.Copy returned the receiver")
		}
		return cpy
	}
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr {
		return c
	}
	cpy := reflect.New(v.Elem().Type())
	cpy.Elem().Set(v.Elem())
	return cpy.Interface().(Component)
}

// renderComponent renders a component, reconciling its output against its
// previous render, and returns the resolved HTML.
func renderComponent(comp Component, send func(Msg)) *HTML {
	if prev := comp.Context().prevRenderComponent; prev != nil {
		if rs, ok := comp.(RenderSkipper); ok && rs.SkipRender(prev) {
			if h := extractHTML(comp.Context().prevRender); h != nil {
				return h
			}
		}
	}

	prevRender := comp.Context().prevRender
	next := comp.Render(send)

	if nested, ok := next.(Component); ok {
		if prevNested, ok := prevRender.(Component); ok && prevNested != nested && sameType(prevNested, nested) {
			nested.Context().prevRender = prevNested.Context().prevRender
			nested.Context().prevRenderComponent = prevNested.Context().prevRenderComponent
			nested.Context().mounted = prevNested.Context().mounted
			prevNested.Context().mounted = false
		}
		oldHTML := extractHTML(prevRender)
		r := renderComponent(nested, send)
		if oldHTML != nil && oldHTML.node != nil && !r.node.Equal(oldHTML.node) {
			replaceNode(r.node, oldHTML.node)
		}
		if prevRender != nil && prevRender != ComponentOrHTML(nested) {
			unmount(prevRender)
		}
		comp.Context().prevRender = nested
		comp.Context().prevRenderComponent = copyComponent(comp)
		mountIfNeeded(comp)
		return r
	}

	nextHTML, ok := next.(*HTML)
	if next != nil && !ok {
		panic("formic: Render must return *HTML, a Component, or nil")
	}
	if nextHTML == nil {
		nextHTML = Tag("noscript")
	}
	nextHTML.reconcile(extractHTML(prevRender), send)
	if prevComp, ok := prevRender.(Component); ok {
		// The render no longer resolves through the nested component.
		unmount(prevComp)
	}
	comp.Context().prevRender = nextHTML
	comp.Context().prevRenderComponent = copyComponent(comp)
	mountIfNeeded(comp)
	return nextHTML
}

func mountIfNeeded(comp Component) {
	if comp.Context().mounted {
		return
	}
	comp.Context().mounted = true
	if m, ok := comp.(Mounter); ok {
		m.Mount()
	}
}

// unmount recursively invokes Unmount on a rendered child and everything
// below it.
func unmount(e ComponentOrHTML) {
	switch v := e.(type) {
	case Component:
		if prevRender, ok := v.Context().prevRender.(*HTML); ok {
			for _, child := range prevRender.children {
				unmount(child)
			}
		}
		if v.Context().mounted {
			v.Context().mounted = false
			if u, ok := v.(Unmounter); ok {
				u.Unmount()
			}
		}
	case *HTML:
		for _, child := range v.children {
			unmount(child)
		}
	}
}

// replaceNode swaps oldNode for newNode in the DOM. It is a no-op when the
// two are the same node or when oldNode is detached.
func replaceNode(newNode, oldNode jsObject) {
	if newNode.Equal(oldNode) {
		return
	}
	parent := oldNode.Get("parentNode")
	if parent == nil || !parent.Truthy() {
		return
	}
	parent.Call("replaceChild", newNode, oldNode)
}

// batch collects re-render requests and flushes them on the next animation
// frame so that a burst of messages produces a single DOM pass per component.
var batch = &renderBatch{}

type renderBatch struct {
	mu        sync.Mutex
	pending   []batchEntry
	scheduled bool
}

type batchEntry struct {
	comp Component
	send func(Msg)
}

// rerender schedules a re-render of an already-rendered component.
func rerender(comp Component, send func(Msg)) {
	batch.add(comp, send)
}

func (b *renderBatch) add(comp Component, send func(Msg)) {
	b.mu.Lock()
	b.pending = append(b.pending, batchEntry{comp: comp, send: send})
	if b.scheduled {
		b.mu.Unlock()
		return
	}
	b.scheduled = true
	b.mu.Unlock()
	requestAnimationFrame(b.flush, send)
}

func (b *renderBatch) flush(_ float64, _ func(Msg)) {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.scheduled = false
	b.mu.Unlock()

	// Later entries supersede earlier ones for the same component.
	rendered := make(map[Component]struct{}, len(pending))
	for i := len(pending) - 1; i >= 0; i-- {
		entry := pending[i]
		if _, done := rendered[entry.comp]; done {
			continue
		}
		rendered[entry.comp] = struct{}{}

		var oldNode jsObject
		if prev := extractHTML(entry.comp.Context().prevRender); prev != nil {
			oldNode = prev.node
		}
		h := renderComponent(entry.comp, entry.send)
		if oldNode != nil && !h.node.Equal(oldNode) {
			replaceNode(h.node, oldNode)
		}
	}
}

// ElementMismatchError is returned when the element a render target expects
// does not match the tag produced by the component's Render method.
type ElementMismatchError struct {
	method, got, want string
}

func (e ElementMismatchError) Error() string {
	return "formic: " + e.method + ": expected Component.Render to return a \"" + e.want + "\", found \"" + e.got + "\""
}

// InvalidTargetError is returned when the element a render target expects is
// null or undefined.
type InvalidTargetError struct {
	method string
}

func (e InvalidTargetError) Error() string {
	return "formic: " + e.method + ": invalid target element is null or undefined"
}

// renderIntoNode renders a component in place of an existing DOM node. The
// component must render an element of the same tag as the target.
func renderIntoNode(methodName string, node jsObject, c Component, send func(Msg)) error {
	if node == nil || node.IsUndefined() {
		return InvalidTargetError{method: methodName}
	}
	h := renderComponent(c, send)
	expectTag := toLower(node.Get("nodeName").String())
	if h.tag != expectTag {
		return ElementMismatchError{method: methodName, got: h.tag, want: expectTag}
	}
	if !h.node.Equal(node) {
		replaceNode(h.node, node)
	}
	return nil
}

// RenderInto renders the component in place of the element matched by the
// given CSS selector. The component must render an element of the same tag
// as the matched element.
//
// An InvalidTargetError is returned when nothing matches the selector, and
// an ElementMismatchError when the rendered tag differs from the target's.
func RenderInto(selector string, c Component, send func(Msg)) error {
	target := global().Get("document").Call("querySelector", selector)
	return renderIntoNode("RenderInto", target, c, send)
}

// RenderBody renders the component into the document body. The component's
// Render method must return a "body" element. It panics on render failure,
// as there is no reasonable recovery once the page cannot be drawn.
func RenderBody(c Component, send func(Msg)) {
	doc := global().Get("document")
	if doc.Get("readyState").String() == "loading" {
		var cb jsFunc
		cb = funcOf(func(_ jsObject, _ []jsObject) interface{} {
			cb.Release()
			renderBodyNow(c, send)
			return undefined()
		})
		doc.Call("addEventListener", "DOMContentLoaded", cb)
		return
	}
	renderBodyNow(c, send)
}

func renderBodyNow(c Component, send func(Msg)) {
	body := global().Get("document").Call("querySelector", "body")
	if err := renderIntoNode("RenderBody", body, c, send); err != nil {
		panic(err)
	}
}

// SetTitle sets the title of the document.
func SetTitle(title string) {
	global().Get("document").Set("title", title)
}

// AddStylesheet adds an external stylesheet to the document head.
func AddStylesheet(url string) {
	link := global().Get("document").Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", url)
	head := global().Get("document").Call("querySelector", "head")
	if head == nil || !head.Truthy() {
		return
	}
	head.Call("appendChild", link)
}
