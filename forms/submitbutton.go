package forms

import (
	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/prop"
)

// SubmitButton is a formic.Component which renders a form's submit button.
// The button is disabled while Enabled is false, which lets callers gate
// submission on field validity.
type SubmitButton struct {
	formic.Core

	Label   string `formic:"prop"`
	Enabled bool   `formic:"prop"`
}

// Render implements the formic.Component interface.
func (b *SubmitButton) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	return elem.Button(
		formic.Markup(
			prop.Type(prop.TypeSubmit),
			prop.Disabled(!b.Enabled),
		),
		formic.Text(b.Label),
	)
}

// Copy implements the formic.Copier interface.
func (b *SubmitButton) Copy() formic.Component {
	cpy := *b
	return &cpy
}
