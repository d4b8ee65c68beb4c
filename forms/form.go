package forms

import (
	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/event"
)

// Form is a formic.Component which wraps its children in a form element.
// Submission is intercepted with preventDefault, so the page never
// navigates; the application observes SubmittedMsg instead.
type Form struct {
	formic.Core

	Children formic.List `formic:"prop"`
}

func (f *Form) onSubmit(send func(formic.Msg)) func(*formic.Event) {
	return func(event *formic.Event) {
		send(SubmittedMsg{})
	}
}

// Render implements the formic.Component interface.
func (f *Form) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	return elem.Form(
		formic.Markup(
			event.Submit(f.onSubmit(send)).PreventDefault(),
		),
		f.Children,
	)
}

// Copy implements the formic.Copier interface.
func (f *Form) Copy() formic.Component {
	cpy := *f
	return &cpy
}
