package formic

import "testing"

type labelView struct{ Core }

func (labelView) Render(send func(Msg)) ComponentOrHTML {
	return Tag("label",
		Markup(
			Property("htmlFor", "name"),
			Class("field-label"),
		),
		Text("Name"),
	)
}

type rowView struct{ Core }

func (rowView) Render(send func(Msg)) ComponentOrHTML {
	return Tag("div", Markup(Class("row")), &labelView{})
}

type inputView struct{ Core }

func (inputView) Render(send func(Msg)) ComponentOrHTML {
	return Tag("input", Markup(
		Property("type", "text"),
		Property("disabled", true),
		Property("required", false),
		Data("step", "2"),
	))
}

func TestRenderString(t *testing.T) {
	got := RenderString(&labelView{})
	want := `<label class="field-label" for="name">Name</label>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderStringNested(t *testing.T) {
	got := RenderString(&rowView{})
	want := `<div class="row"><label class="field-label" for="name">Name</label></div>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderStringVoidElement(t *testing.T) {
	// Void elements have no closing tag. Boolean properties serialize bare
	// when true and disappear when false.
	got := RenderString(&inputView{})
	want := `<input data-step="2" disabled type="text">`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderStringEscapesText(t *testing.T) {
	v := &swapView{render: func() ComponentOrHTML {
		return Tag("p", Text("a < b & c"))
	}}
	got := RenderString(v)
	want := "<p>a &lt; b &amp; c</p>"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderHTML(t *testing.T) {
	h := RenderHTML(&labelView{})
	if h.tag != "label" {
		t.Fatalf("got tag %q want %q", h.tag, "label")
	}
	if h.properties["htmlFor"] != "name" {
		t.Fatalf("got htmlFor %v want %q", h.properties["htmlFor"], "name")
	}
	if len(h.children) != 1 {
		t.Fatalf("got %d children, want 1", len(h.children))
	}
}
