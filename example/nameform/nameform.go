package main

import (
	"fmt"

	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/field"
	"github.com/octoberswimmer/formic/forms"
	"github.com/octoberswimmer/formic/validate"
)

// The after picture: the namelocal example with its input state moved into a
// field.Model and its markup into forms components. The update function only
// routes messages; touched tracking and error derivation live in the field
// machine.

func main() {
	formic.SetTitle("Simple Form")
	formic.AddStylesheet("/app.css")
	pgm := formic.NewProgram(NewFormView())
	if _, err := pgm.Run(); err != nil {
		panic(err)
	}
}

// FormView is the page model: a single validated name field.
type FormView struct {
	formic.Core

	name field.Model
}

func NewFormView() *FormView {
	return &FormView{name: field.New(validate.NonEmpty)}
}

func (v *FormView) Init() formic.Cmd { return nil }

func (v *FormView) Update(msg formic.Msg) (formic.Model, formic.Cmd) {
	switch msg := msg.(type) {
	case forms.ChangedMsg:
		if msg.ID == "name" {
			v.name = v.name.Change(msg.Value)
		}
	case forms.BlurredMsg:
		if msg.ID == "name" {
			v.name = v.name.Blur()
		}
	case forms.SubmittedMsg:
		fmt.Println("Submitted:", v.name.Value())
		v.name = v.name.Reset()
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
				&forms.SubmitButton{
					Label:   "Submit",
					Enabled: v.name.Valid(),
				},
			},
		},
	)
}
