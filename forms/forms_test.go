package forms_test

import (
	"strings"
	"testing"

	html "github.com/gost-dom/browser/html"

	"github.com/octoberswimmer/formic"
	"github.com/octoberswimmer/formic/elem"
	"github.com/octoberswimmer/formic/field"
	"github.com/octoberswimmer/formic/forms"
	"github.com/octoberswimmer/formic/prop"
	"github.com/octoberswimmer/formic/validate"
)

func newWindow(t *testing.T) html.Window {
	t.Helper()
	win, err := html.NewWindowReader(strings.NewReader("<!DOCTYPE html><html><body></body></html>"))
	if err != nil {
		t.Fatalf("failed to create gost-dom window: %v", err)
	}
	return win
}

func TestTextFieldUntouched(t *testing.T) {
	f := &forms.TextField{
		ID:      "name",
		Label:   "Your Name",
		Message: "Name must not be empty.",
		Input:   field.New(validate.NonEmpty),
	}
	out := formic.RenderString(f)

	if !strings.Contains(out, `<label for="name">Your Name</label>`) {
		t.Errorf("missing label: %s", out)
	}
	if !strings.Contains(out, `class="form-control"`) {
		t.Errorf("missing form-control class: %s", out)
	}
	if strings.Contains(out, "invalid") {
		t.Errorf("untouched field should not be styled invalid: %s", out)
	}
	if strings.Contains(out, "Name must not be empty.") {
		t.Errorf("untouched field should not show its message: %s", out)
	}
	if !strings.Contains(out, `type="text"`) {
		t.Errorf("missing default input type: %s", out)
	}
}

func TestTextFieldShowsErrorOnlyWhileTouchedAndInvalid(t *testing.T) {
	render := func(m field.Model) string {
		return formic.RenderString(&forms.TextField{
			ID:      "name",
			Label:   "Your Name",
			Message: "Name must not be empty.",
			Input:   m,
		})
	}

	out := render(field.New(validate.NonEmpty).Blur())
	if !strings.Contains(out, `class="form-control invalid"`) {
		t.Errorf("blurred empty field should be styled invalid: %s", out)
	}
	if !strings.Contains(out, `<p class="error-text">Name must not be empty.</p>`) {
		t.Errorf("blurred empty field should show its message: %s", out)
	}

	out = render(field.New(validate.NonEmpty).Change("Sam").Blur())
	if strings.Contains(out, "invalid") {
		t.Errorf("valid field should not be styled invalid: %s", out)
	}
	if !strings.Contains(out, `value="Sam"`) {
		t.Errorf("input should be controlled by the snapshot value: %s", out)
	}
}

func TestTextFieldType(t *testing.T) {
	out := formic.RenderString(&forms.TextField{ID: "email", Label: "Email", Type: prop.TypeEmail})
	if !strings.Contains(out, `type="email"`) {
		t.Errorf("explicit type not rendered: %s", out)
	}
}

func TestTextFieldPlaceholder(t *testing.T) {
	out := formic.RenderString(&forms.TextField{ID: "name", Label: "Name", Placeholder: "e.g. Ada"})
	if !strings.Contains(out, `placeholder="e.g. Ada"`) {
		t.Errorf("placeholder not rendered: %s", out)
	}
}

func TestTextFieldSanitizesHelp(t *testing.T) {
	f := &forms.TextField{
		ID:    "name",
		Label: "Name",
		Help:  `Use your <em>given</em> name.<script>alert(1)</script>`,
	}
	out := formic.RenderString(f)

	if !strings.Contains(out, "<em>given</em>") {
		t.Errorf("benign markup should survive sanitizing: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script must be stripped from help: %s", out)
	}
}

func TestSubmitButton(t *testing.T) {
	out := formic.RenderString(&forms.SubmitButton{Label: "Submit", Enabled: true})
	if !strings.Contains(out, `type="submit"`) {
		t.Errorf("submit button should have type submit: %s", out)
	}
	if !strings.Contains(out, ">Submit<") {
		t.Errorf("label not rendered: %s", out)
	}
	if strings.Contains(out, "disabled") {
		t.Errorf("enabled button should not be disabled: %s", out)
	}

	out = formic.RenderString(&forms.SubmitButton{Label: "Submit"})
	if !strings.Contains(out, "disabled") {
		t.Errorf("button should be disabled while not enabled: %s", out)
	}
}

// nameFormModel drives a one-field form the way an application would:
// messages from the components are routed through the field reducer.
type nameFormModel struct {
	formic.Core

	name      field.Model
	submitted int
}

func (m *nameFormModel) Init() formic.Cmd { return nil }

func (m *nameFormModel) Update(msg formic.Msg) (formic.Model, formic.Cmd) {
	switch msg := msg.(type) {
	case forms.ChangedMsg:
		if msg.ID == "name" {
			m.name = m.name.Change(msg.Value)
		}
	case forms.BlurredMsg:
		if msg.ID == "name" {
			m.name = m.name.Blur()
		}
	case forms.SubmittedMsg:
		m.submitted++
		m.name = m.name.Reset()
	}
	return m, nil
}

func (m *nameFormModel) Render(send func(formic.Msg)) formic.ComponentOrHTML {
	return elem.Body(
		&forms.Form{
			Children: formic.List{
				&forms.TextField{
					ID:      "name",
					Label:   "Your Name",
					Message: "Name must not be empty.",
					Input:   m.name,
				},
				&forms.SubmitButton{Label: "Submit", Enabled: m.name.Valid()},
			},
		},
	)
}

func TestFormInteraction(t *testing.T) {
	win := newWindow(t)
	m := &nameFormModel{name: field.New(validate.NonEmpty)}

	body, _, err := formic.RenderComponentIntoWithSend(win, m)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if strings.Contains(body.InnerHTML(), "Name must not be empty.") {
		t.Fatalf("initial render should not show the error: %s", body.InnerHTML())
	}

	// Blurring the untouched empty input surfaces the error.
	if err := body.Dispatch("#name", "blur"); err != nil {
		t.Fatal(err)
	}
	if !m.name.Touched() {
		t.Fatal("blur should mark the field touched")
	}
	if !strings.Contains(body.InnerHTML(), "Name must not be empty.") {
		t.Fatalf("expected error after blur: %s", body.InnerHTML())
	}

	// Typing a valid name clears it.
	if err := body.SetValue("#name", "Sam"); err != nil {
		t.Fatal(err)
	}
	if err := body.Dispatch("#name", "input"); err != nil {
		t.Fatal(err)
	}
	if got := m.name.Value(); got != "Sam" {
		t.Fatalf("expected change to route through the reducer, got %q", got)
	}
	if strings.Contains(body.InnerHTML(), "Name must not be empty.") {
		t.Fatalf("error should clear after valid input: %s", body.InnerHTML())
	}

	// Submitting resets the field.
	if err := body.Dispatch("form", "submit"); err != nil {
		t.Fatal(err)
	}
	if m.submitted != 1 {
		t.Fatalf("expected one submission, got %d", m.submitted)
	}
	if got := m.name.Value(); got != "" {
		t.Fatalf("expected field reset after submit, got value %q", got)
	}
	if m.name.Touched() {
		t.Fatal("expected field untouched after submit")
	}
}
