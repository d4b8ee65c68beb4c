// Package event defines markup to bind DOM events.
package event

import (
	"github.com/octoberswimmer/formic"
)

// Blur is an event fired when an element has lost focus.
//
// https://developer.mozilla.org/docs/Web/Events/blur
func Blur(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("blur", listener)
}

// Change is an event fired when the change event occurs; i.e. when a form
// control's value is committed by the user.
//
// https://developer.mozilla.org/docs/Web/Events/change
func Change(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("change", listener)
}

// Click is an event fired when a pointing device button has been pressed and
// released on an element.
//
// https://developer.mozilla.org/docs/Web/Events/click
func Click(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("click", listener)
}

// DoubleClick is an event fired when a pointing device button is clicked
// twice on an element.
//
// https://developer.mozilla.org/docs/Web/Events/dblclick
func DoubleClick(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("dblclick", listener)
}

// Focus is an event fired when an element has received focus.
//
// https://developer.mozilla.org/docs/Web/Events/focus
func Focus(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("focus", listener)
}

// Input is an event fired when the value of an input or textarea element is
// changed.
//
// https://developer.mozilla.org/docs/Web/Events/input
func Input(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("input", listener)
}

// KeyDown is an event fired when a key is pressed down.
//
// https://developer.mozilla.org/docs/Web/Events/keydown
func KeyDown(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("keydown", listener)
}

// KeyPress is an event fired when a key is pressed down and that key
// normally produces a character value.
//
// https://developer.mozilla.org/docs/Web/Events/keypress
func KeyPress(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("keypress", listener)
}

// KeyUp is an event fired when a key is released.
//
// https://developer.mozilla.org/docs/Web/Events/keyup
func KeyUp(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("keyup", listener)
}

// Submit is an event fired when a form is submitted.
//
// https://developer.mozilla.org/docs/Web/Events/submit
func Submit(listener func(*formic.Event)) *formic.EventListener {
	return formic.NewEventListener("submit", listener)
}
