package main

import (
	"strings"
	"testing"

	"github.com/gost-dom/browser/html"
	"github.com/octoberswimmer/formic"
)

func newWindow(t *testing.T) html.Window {
	t.Helper()
	win, err := html.NewWindowReader(strings.NewReader("<!DOCTYPE html><html><body></body></html>"))
	if err != nil {
		t.Fatalf("failed to create gost-dom window: %v", err)
	}
	return win
}

// TestFormViewInitialRender verifies the refactored form renders the same
// initial UI as the namelocal example.
func TestFormViewInitialRender(t *testing.T) {
	win := newWindow(t)
	body, err := formic.RenderComponentInto(win, NewFormView())
	if err != nil {
		t.Fatalf("RenderComponentInto error: %v", err)
	}
	got := body.InnerHTML()
	if !strings.Contains(got, "Your Name") {
		t.Errorf("label not rendered; got %q", got)
	}
	if !strings.Contains(got, `for="name"`) || !strings.Contains(got, `id="name"`) {
		t.Errorf("label/input association missing; got %q", got)
	}
	if !strings.Contains(got, "form-control") {
		t.Errorf("field wrapper missing; got %q", got)
	}
	if !strings.Contains(got, "disabled") {
		t.Errorf("submit should start disabled while the name is empty; got %q", got)
	}
	if strings.Contains(got, "invalid") || strings.Contains(got, "Name must not be empty.") {
		t.Errorf("untouched form should not show the error; got %q", got)
	}
}

// TestFormViewBlurShowsError verifies the field machine surfaces the error
// only after blur.
func TestFormViewBlurShowsError(t *testing.T) {
	win := newWindow(t)
	body, _, err := formic.RenderComponentIntoWithSend(win, NewFormView())
	if err != nil {
		t.Fatalf("RenderComponentIntoWithSend error: %v", err)
	}
	if err := body.Dispatch("#name", "blur"); err != nil {
		t.Fatal(err)
	}
	got := body.InnerHTML()
	if !strings.Contains(got, "invalid") {
		t.Errorf("blurred empty input should be styled invalid; got %q", got)
	}
	if !strings.Contains(got, "Name must not be empty.") {
		t.Errorf("blurred empty input should show the message; got %q", got)
	}
}

// TestFormViewWhitespaceIsInvalid verifies validate.NonEmpty trims before
// deciding.
func TestFormViewWhitespaceIsInvalid(t *testing.T) {
	win := newWindow(t)
	body, _, err := formic.RenderComponentIntoWithSend(win, NewFormView())
	if err != nil {
		t.Fatalf("RenderComponentIntoWithSend error: %v", err)
	}
	if err := body.SetValue("#name", "   "); err != nil {
		t.Fatal(err)
	}
	if err := body.Dispatch("#name", "input"); err != nil {
		t.Fatal(err)
	}
	if err := body.Dispatch("#name", "blur"); err != nil {
		t.Fatal(err)
	}
	if got := body.InnerHTML(); !strings.Contains(got, "Name must not be empty.") {
		t.Errorf("whitespace-only name should error after blur; got %q", got)
	}
}

// TestFormViewTypingClearsError verifies a valid name clears the error as
// soon as it is typed.
func TestFormViewTypingClearsError(t *testing.T) {
	win := newWindow(t)
	body, _, err := formic.RenderComponentIntoWithSend(win, NewFormView())
	if err != nil {
		t.Fatalf("RenderComponentIntoWithSend error: %v", err)
	}
	if err := body.Dispatch("#name", "blur"); err != nil {
		t.Fatal(err)
	}
	if err := body.SetValue("#name", "Sam"); err != nil {
		t.Fatal(err)
	}
	if err := body.Dispatch("#name", "input"); err != nil {
		t.Fatal(err)
	}
	got := body.InnerHTML()
	if strings.Contains(got, "Name must not be empty.") || strings.Contains(got, "invalid") {
		t.Errorf("valid name should clear the error; got %q", got)
	}
	if !strings.Contains(got, `value="Sam"`) {
		t.Errorf("input should be controlled by the snapshot; got %q", got)
	}
}

// TestFormViewSubmitResets verifies submission resets the field machine to
// its initial state.
func TestFormViewSubmitResets(t *testing.T) {
	win := newWindow(t)
	body, _, err := formic.RenderComponentIntoWithSend(win, NewFormView())
	if err != nil {
		t.Fatalf("RenderComponentIntoWithSend error: %v", err)
	}
	if err := body.SetValue("#name", "Sam"); err != nil {
		t.Fatal(err)
	}
	if err := body.Dispatch("#name", "input"); err != nil {
		t.Fatal(err)
	}
	if err := body.Dispatch("form", "submit"); err != nil {
		t.Fatal(err)
	}
	got := body.InnerHTML()
	if !strings.Contains(got, `value=""`) {
		t.Errorf("submit should clear the input; got %q", got)
	}
	if strings.Contains(got, "invalid") || strings.Contains(got, "Name must not be empty.") {
		t.Errorf("cleared form should be untouched again; got %q", got)
	}
}
