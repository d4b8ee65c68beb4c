package main

import (
	"bytes"
	"fmt"

	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/event"
	"github.com/octoberswimmer/formic/field"
	"github.com/octoberswimmer/formic/forms"
	"github.com/octoberswimmer/formic/prop"
	"github.com/octoberswimmer/formic/validate"
	"github.com/yuin/goldmark"
)

// A feedback form with a markdown message and a live preview. The name field
// uses the stock forms.TextField; the message field shows how to bind a
// field.Model to hand-written markup, here a textarea, sending the same
// forms messages the stock components do.

const initialMessage = "Thanks for **formic**!"

func main() {
	formic.SetTitle("Feedback Form")
	formic.AddStylesheet("/app.css")
	pgm := formic.NewProgram(NewFormView())
	if _, err := pgm.Run(); err != nil {
		panic(err)
	}
}

// FormView is the page model: a name field and a markdown message field.
type FormView struct {
	formic.Core

	name    field.Model
	message field.Model
}

func NewFormView() *FormView {
	return &FormView{
		name:    field.New(validate.NonEmpty),
		message: field.New(validate.MinRunes(10)).Change(initialMessage),
	}
}

func (v *FormView) Init() formic.Cmd { return nil }

func (v *FormView) Update(msg formic.Msg) (formic.Model, formic.Cmd) {
	switch msg := msg.(type) {
	case forms.ChangedMsg:
		switch msg.ID {
		case "name":
			v.name = v.name.Change(msg.Value)
		case "message":
			v.message = v.message.Change(msg.Value)
		}
	case forms.BlurredMsg:
		switch msg.ID {
		case "name":
			v.name = v.name.Blur()
		case "message":
			v.message = v.message.Blur()
		}
	case forms.SubmittedMsg:
		fmt.Println("Feedback from", v.name.Value()+":", v.message.Value())
		v.name = v.name.Reset()
		v.message = v.message.Reset()
	}
	return v, nil
}

// Render implements the formic.Component interface.
func (v *FormView) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	return elem.Body(
		&forms.Form{
			Children: formic.List{
				&forms.TextField{
					ID:      "name",
					Label:   "Your Name",
					Message: "Name must not be empty.",
					Input:   v.name,
				},
				v.renderMessage(send),
				&forms.SubmitButton{
					Label:   "Send",
					Enabled: v.name.Valid() && v.message.Valid(),
				},
			},
		},
		&Preview{Input: v.message.Value()},
	)
}

// renderMessage wires the message field to a textarea by hand, mirroring the
// structure forms.TextField renders for inputs.
func (v *FormView) renderMessage(send func(formic.Msg)) *formic.HTML {
	return elem.Div(
		formic.Markup(
			formic.Class("form-control"),
			formic.MarkupIf(v.message.HasError(), formic.Class("invalid")),
		),
		elem.Label(
			formic.Markup(prop.For("message")),
			formic.Text("Message"),
		),
		elem.TextArea(
			formic.Markup(
				prop.ID("message"),
				formic.Property("rows", 8),
				formic.Property("cols", 48),
				event.Input(func(e *formic.Event) {
					send(forms.ChangedMsg{ID: "message", Value: e.Target.Get("value").String()})
				}),
				event.Blur(func(e *formic.Event) {
					send(forms.BlurredMsg{ID: "message"})
				}),
			),
			// Initial textarea text.
			formic.Text(v.message.Value()),
		),
		formic.If(v.message.HasError(),
			elem.Paragraph(
				formic.Markup(formic.Class("error-text")),
				formic.Text("Tell us a bit more, at least 10 characters."),
			),
		),
	)
}

// Preview renders the markdown message as sanitized HTML.
type Preview struct {
	formic.Core
	Input string `formic:"prop"`
}

// Render implements the formic.Component interface.
func (p *Preview) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.Input), &buf); err != nil {
		panic(err)
	}
	return elem.Div(
		formic.Markup(
			formic.Class("preview"),
			formic.SanitizedHTML(buf.String()),
		),
	)
}
