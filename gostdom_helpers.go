//go:build !js
// +build !js

package formic

import (
	"fmt"

	ev "github.com/gost-dom/browser/dom/event"
	"github.com/gost-dom/browser/html"
)

// Body proxies interactions to the current document body of a gost-dom
// window, for tests that drive rendered components.
type Body struct {
	win html.Window
}

// Click dispatches a click event on the document body.
func (b Body) Click() {
	if elt, ok := b.win.Document().Body().(html.HTMLElement); ok {
		elt.Click()
	}
}

// InnerHTML returns the current innerHTML of the document body.
func (b Body) InnerHTML() string {
	return b.win.Document().Body().InnerHTML()
}

// Dispatch dispatches a DOM event of the given type on the element matching
// selector.
func (b Body) Dispatch(selector, eventType string) error {
	node, err := b.win.Document().QuerySelector(selector)
	if err != nil {
		return fmt.Errorf("query selector %q error: %w", selector, err)
	}
	if node == nil {
		return fmt.Errorf("gostdom: no element matches %q", selector)
	}
	ge := &gostEvent{ev: &ev.Event{Type: eventType}}
	WrapGostNode(node).Call("dispatchEvent", ge)
	return nil
}

// SetValue sets the value attribute of the element matching selector. Combined
// with Dispatch(selector, "input") it simulates the user typing into a field.
func (b Body) SetValue(selector, value string) error {
	node, err := b.win.Document().QuerySelector(selector)
	if err != nil {
		return fmt.Errorf("query selector %q error: %w", selector, err)
	}
	if node == nil {
		return fmt.Errorf("gostdom: no element matches %q", selector)
	}
	node.SetAttribute("value", value)
	return nil
}

// RenderComponentInto renders the given Model into the <body> of the provided
// gost-dom Window. It configures formic to use gost-dom, performs the initial
// render, and wires subsequent re-renders automatically upon messages (e.g.,
// from event listeners). Returns a Body handle for inspection.
func RenderComponentInto(win html.Window, m Model) (Body, error) {
	body, _, err := RenderComponentIntoWithSend(win, m)
	return body, err
}

// RenderComponentIntoWithSend renders the given Model into the <body> of the
// provided gost-dom Window. It returns a Body handle and the send function
// used for dispatching messages.
func RenderComponentIntoWithSend(win html.Window, m Model) (Body, func(Msg), error) {
	UseGostDOM(win)
	doc := win.Document()
	bodyNode := doc.Body()
	if bodyNode == nil {
		return Body{}, nil, fmt.Errorf("gostdom: <body> element not found")
	}
	root := WrapGostNode(bodyNode)
	model := m
	var send func(Msg)
	send = func(msg Msg) {
		updated, _ := model.Update(msg)
		model = updated
		// Re-query and wrap the current <body> element before re-render
		bodyNode := win.Document().Body()
		root = WrapGostNode(bodyNode)
		_ = RenderIntoNode(root, model, send)
	}
	if err := RenderIntoNode(root, model, send); err != nil {
		return Body{}, nil, err
	}
	return Body{win: win}, send, nil
}
