package main

import (
	"fmt"
	"strings"

	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/event"
	"github.com/octoberswimmer/formic/prop"
	"github.com/octoberswimmer/formic/style"
)

// The before picture: one name input managed with plain model fields. The
// nameform example renders the same form with the state moved into a
// field.Model and the markup into forms components.

func main() {
	formic.SetTitle("Simple Form")
	formic.AddStylesheet("/app.css")
	pgm := formic.NewProgram(&FormView{})
	if _, err := pgm.Run(); err != nil {
		panic(err)
	}
}

// NameChangedMsg is sent when the name input changes.
type NameChangedMsg struct{ Value string }

// NameBlurredMsg is sent when the name input loses focus.
type NameBlurredMsg struct{}

// SubmitMsg is sent when the form is submitted.
type SubmitMsg struct{}

// FormView holds the form state directly: the entered name and whether the
// input has been left once. Validity is recomputed inline on every render.
type FormView struct {
	formic.Core

	name    string
	touched bool
}

func (v *FormView) Init() formic.Cmd { return nil }

func (v *FormView) Update(msg formic.Msg) (formic.Model, formic.Cmd) {
	switch msg := msg.(type) {
	case NameChangedMsg:
		v.name = msg.Value
	case NameBlurredMsg:
		v.touched = true
	case SubmitMsg:
		fmt.Println("Submitted:", v.name)
		v.name = ""
		v.touched = false
	}
	return v, nil
}

// Render implements the formic.Component interface.
func (v *FormView) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	valid := strings.TrimSpace(v.name) != ""
	hasError := !valid && v.touched

	return elem.Body(
		elem.Form(
			formic.Markup(
				style.MaxWidth(style.Px(480)),
				event.Submit(func(e *formic.Event) {
					send(SubmitMsg{})
				}).PreventDefault(),
			),
			elem.Div(
				formic.Markup(
					formic.Class("form-control"),
					formic.MarkupIf(hasError, formic.Class("invalid")),
				),
				elem.Label(
					formic.Markup(
						prop.For("name"),
					),
					formic.Text("Your Name"),
				),
				elem.Input(
					formic.Markup(
						prop.ID("name"),
						prop.Type(prop.TypeText),
						prop.Value(v.name),
						event.Input(func(e *formic.Event) {
							send(NameChangedMsg{Value: e.Target.Get("value").String()})
						}),
						event.Blur(func(e *formic.Event) {
							send(NameBlurredMsg{})
						}),
					),
				),
				formic.If(hasError,
					elem.Paragraph(
						formic.Markup(
							formic.Class("error-text"),
						),
						formic.Text("Name must not be empty."),
					),
				),
			),
			elem.Button(
				formic.Markup(
					prop.Type(prop.TypeSubmit),
					prop.Disabled(!valid),
				),
				formic.Text("Submit"),
			),
		),
	)
}
