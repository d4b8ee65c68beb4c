package forms

import (
	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/event"
	"github.com/octoberswimmer/formic/field"
	"github.com/octoberswimmer/formic/prop"
)

// TextField is a formic.Component which renders one labelled input bound to
// a field.Model snapshot.
//
// The input is controlled: its value property is written from the snapshot
// on every render, and edits reach the model only through the ChangedMsg and
// BlurredMsg the component sends. The wrapping div carries class
// "form-control", plus "invalid" while the snapshot reports an error, and
// Message is shown underneath for exactly as long as the error lasts.
type TextField struct {
	formic.Core

	ID          string         `formic:"prop"`
	Label       string         `formic:"prop"`
	Type        prop.InputType `formic:"prop"`
	Placeholder string         `formic:"prop"`
	Help        string         `formic:"prop"`
	Message     string         `formic:"prop"`
	Input       field.Model    `formic:"prop"`
}

func (f *TextField) onInput(send func(formic.Msg)) func(*formic.Event) {
	return func(event *formic.Event) {
		send(ChangedMsg{ID: f.ID, Value: event.Target.Get("value").String()})
	}
}

func (f *TextField) onBlur(send func(formic.Msg)) func(*formic.Event) {
	return func(event *formic.Event) {
		send(BlurredMsg{ID: f.ID})
	}
}

// Render implements the formic.Component interface.
func (f *TextField) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	typ := f.Type
	if typ == "" {
		typ = prop.TypeText
	}

	return elem.Div(
		formic.Markup(
			formic.Class("form-control"),
			formic.MarkupIf(f.Input.HasError(), formic.Class("invalid")),
		),

		elem.Label(
			formic.Markup(
				prop.For(f.ID),
			),
			formic.Text(f.Label),
		),
		elem.Input(
			formic.Markup(
				prop.ID(f.ID),
				prop.Type(typ),
				formic.MarkupIf(f.Placeholder != "", prop.Placeholder(f.Placeholder)),
				prop.Value(f.Input.Value()),
				event.Input(f.onInput(send)),
				event.Blur(f.onBlur(send)),
			),
		),
		formic.If(f.Help != "",
			elem.Paragraph(
				formic.Markup(
					formic.Class("help-text"),
					formic.SanitizedHTML(f.Help),
				),
			),
		),
		formic.If(f.Input.HasError() && f.Message != "",
			elem.Paragraph(
				formic.Markup(
					formic.Class("error-text"),
				),
				formic.Text(f.Message),
			),
		),
	)
}

// Copy implements the formic.Copier interface.
func (f *TextField) Copy() formic.Component {
	cpy := *f
	return &cpy
}
