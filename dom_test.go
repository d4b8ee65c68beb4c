package formic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gost-dom/browser/html"
)

func newTestWindow(t *testing.T) html.Window {
	t.Helper()
	win, err := html.NewWindowReader(strings.NewReader("<!DOCTYPE html><html><body></body></html>"))
	if err != nil {
		t.Fatalf("failed to create gost-dom window: %v", err)
	}
	return win
}

// recoverStr runs f and returns the string form of the panic it raised, or
// the empty string if it returned normally.
func recoverStr(f func()) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprint(r)
		}
	}()
	f()
	return ""
}

type coreView struct{ Core }

func (coreView) Render(send func(Msg)) ComponentOrHTML { return Tag("p") }

type corePtrView struct{ *Core }

func (corePtrView) Render(send func(Msg)) ComponentOrHTML { return Tag("p") }

func TestCore(t *testing.T) {
	// A pointer to a component with an embedded Core is the supported shape.
	t.Run("comp_ptr_and_core", func(t *testing.T) {
		v1 := Tag("v1")
		valid := Component(&coreView{})
		valid.Context().prevRender = v1
		if valid.Context().prevRender != v1 {
			t.Fatal("valid.Context().prevRender != v1")
		}
	})

	// A non-pointer component with an embedded Core does not satisfy the
	// Component interface, because Context has a pointer receiver.
	t.Run("comp_and_core", func(t *testing.T) {
		isComponent := func(x interface{}) bool {
			_, ok := x.(Component)
			return ok
		}
		if isComponent(coreView{}) {
			t.Fatal("expected !isComponent(coreView{})")
		}
	})

	// Embedding *Core instead of Core compiles, but the context is nil and
	// using the component panics.
	t.Run("comp_ptr_and_core_ptr", func(t *testing.T) {
		v1 := Tag("v1")
		invalid := Component(&corePtrView{})
		got := recoverStr(func() {
			invalid.Context().prevRender = v1
		})
		want := "runtime error: invalid memory address or nil pointer dereference"
		if got != want {
			t.Fatalf("got panic %q want %q", got, want)
		}
	})
	t.Run("comp_and_core_ptr", func(t *testing.T) {
		v1 := Tag("v1")
		invalid := Component(corePtrView{})
		got := recoverStr(func() {
			invalid.Context().prevRender = v1
		})
		want := "runtime error: invalid memory address or nil pointer dereference"
		if got != want {
			t.Fatalf("got panic %q want %q", got, want)
		}
	})
}

func TestTag(t *testing.T) {
	markupCalled := false
	want := "foobar"
	h := Tag(want, Markup(markupFunc(func(h *HTML) {
		markupCalled = true
	})))
	if !markupCalled {
		t.Fatal("expected markup to be applied")
	}
	if h.tag != want {
		t.Fatalf("got tag %q want tag %q", h.tag, want)
	}
	if h.text != "" {
		t.Fatal("expected no text")
	}
}

func TestText(t *testing.T) {
	markupCalled := false
	want := "Hello world!"
	h := Text(want, Markup(markupFunc(func(h *HTML) {
		markupCalled = true
	})))
	if !markupCalled {
		t.Fatal("expected markup to be applied")
	}
	if h.text != want {
		t.Fatalf("got text %q want text %q", h.text, want)
	}
	if h.tag != "" {
		t.Fatal("expected no tag")
	}
}

func TestHTMLNode(t *testing.T) {
	win := newTestWindow(t)
	UseGostDOM(win)

	h := Tag("div")
	h.reconcile(nil, func(Msg) {})
	if got := h.Node().Get("nodeName").String(); got != "DIV" {
		t.Fatalf("h.Node() nodeName = %q, want %q", got, "DIV")
	}
}

func TestReconcileInvalid(t *testing.T) {
	t.Run("one_of_tag_or_text", func(t *testing.T) {
		got := recoverStr(func() {
			h := &HTML{text: "hello", tag: "div"}
			h.reconcile(nil, func(Msg) {})
		})
		want := "formic: internal error (only one of HTML.tag or HTML.text may be set)"
		if got != want {
			t.Fatalf("got panic %q want %q", got, want)
		}
	})
	t.Run("unsafe_text", func(t *testing.T) {
		got := recoverStr(func() {
			h := &HTML{text: "hello", innerHTML: "foobar"}
			h.reconcile(nil, func(Msg) {})
		})
		want := "formic: only HTML may have UnsafeHTML attribute"
		if got != want {
			t.Fatalf("got panic %q want %q", got, want)
		}
	})
}

// swapMsg replaces the view's render output, so a test can reconcile the DOM
// from one state to the next.
type swapMsg struct {
	render func() ComponentOrHTML
}

type swapView struct {
	Core
	render func() ComponentOrHTML
}

func (v *swapView) Init() Cmd { return nil }

func (v *swapView) Update(msg Msg) (Model, Cmd) {
	if m, ok := msg.(swapMsg); ok {
		v.render = m.render
	}
	return v, nil
}

func (v *swapView) Render(send func(Msg)) ComponentOrHTML { return v.render() }

func TestReconcileText(t *testing.T) {
	win := newTestWindow(t)
	view := &swapView{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Text("bar")))
	}}
	body, send, err := RenderComponentIntoWithSend(win, view)
	if err != nil {
		t.Fatal(err)
	}
	if got := body.InnerHTML(); !strings.Contains(got, "bar") {
		t.Fatalf("initial render missing text: %q", got)
	}

	send(swapMsg{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Text("foo")))
	}})
	got := body.InnerHTML()
	if !strings.Contains(got, "foo") {
		t.Fatalf("text not patched: %q", got)
	}
	if strings.Contains(got, "bar") {
		t.Fatalf("old text still present: %q", got)
	}
}

func TestReconcileProperties(t *testing.T) {
	win := newTestWindow(t)
	view := &swapView{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Markup(
			Property("id", "box"),
			Property("title", "first"),
		)))
	}}
	body, send, err := RenderComponentIntoWithSend(win, view)
	if err != nil {
		t.Fatal(err)
	}
	got := body.InnerHTML()
	if !strings.Contains(got, `id="box"`) || !strings.Contains(got, `title="first"`) {
		t.Fatalf("initial properties missing: %q", got)
	}

	// Change one property and drop the other.
	send(swapMsg{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Markup(
			Property("id", "crate"),
		)))
	}})
	got = body.InnerHTML()
	if !strings.Contains(got, `id="crate"`) {
		t.Fatalf("property not updated: %q", got)
	}
	if strings.Contains(got, "title=") {
		t.Fatalf("removed property still present: %q", got)
	}
}

func TestReconcileClasses(t *testing.T) {
	win := newTestWindow(t)
	view := &swapView{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Markup(Class("card", "active"))))
	}}
	body, send, err := RenderComponentIntoWithSend(win, view)
	if err != nil {
		t.Fatal(err)
	}
	got := body.InnerHTML()
	if !strings.Contains(got, "card") || !strings.Contains(got, "active") {
		t.Fatalf("initial classes missing: %q", got)
	}

	send(swapMsg{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Markup(Class("card"))))
	}})
	got = body.InnerHTML()
	if !strings.Contains(got, "card") {
		t.Fatalf("kept class missing: %q", got)
	}
	if strings.Contains(got, "active") {
		t.Fatalf("removed class still present: %q", got)
	}
}

func TestReconcileReplacesMismatchedTag(t *testing.T) {
	win := newTestWindow(t)
	view := &swapView{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Text("inside")))
	}}
	body, send, err := RenderComponentIntoWithSend(win, view)
	if err != nil {
		t.Fatal(err)
	}

	send(swapMsg{render: func() ComponentOrHTML {
		return Tag("body", Tag("span", Text("inside")))
	}})
	got := body.InnerHTML()
	if !strings.Contains(got, "<span>") {
		t.Fatalf("replacement tag missing: %q", got)
	}
	if strings.Contains(got, "<div>") {
		t.Fatalf("old tag still present: %q", got)
	}
}

func TestReconcileUnsafeHTML(t *testing.T) {
	win := newTestWindow(t)
	view := &swapView{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Markup(UnsafeHTML("<b>bold</b>"))))
	}}
	body, send, err := RenderComponentIntoWithSend(win, view)
	if err != nil {
		t.Fatal(err)
	}
	if got := body.InnerHTML(); !strings.Contains(got, "<b>bold</b>") {
		t.Fatalf("innerHTML not rendered: %q", got)
	}

	send(swapMsg{render: func() ComponentOrHTML {
		return Tag("body", Tag("div", Markup(UnsafeHTML("<i>italic</i>"))))
	}})
	got := body.InnerHTML()
	if !strings.Contains(got, "<i>italic</i>") {
		t.Fatalf("innerHTML not patched: %q", got)
	}
	if strings.Contains(got, "<b>bold</b>") {
		t.Fatalf("old innerHTML still present: %q", got)
	}
}

// mountProbe records how many times it was mounted.
type mountProbe struct {
	Core
	mounts *int
}

func (p *mountProbe) Render(send func(Msg)) ComponentOrHTML {
	return Tag("div", Markup(Property("id", "probe")))
}

func (p *mountProbe) Mount() { *p.mounts++ }

func TestFreshInstanceKeepsMount(t *testing.T) {
	win := newTestWindow(t)

	// The render closure builds a new child instance on every call. The
	// reconciler must adopt the previous instance's context so the child is
	// patched in place rather than mounted again.
	var mounts int
	render := func() ComponentOrHTML {
		return Tag("body", &mountProbe{mounts: &mounts})
	}
	view := &swapView{render: render}
	body, send, err := RenderComponentIntoWithSend(win, view)
	if err != nil {
		t.Fatal(err)
	}
	if mounts != 1 {
		t.Fatalf("mounts = %d, want 1", mounts)
	}

	send(swapMsg{render: render})
	if mounts != 1 {
		t.Fatalf("fresh instance was mounted again: mounts = %d", mounts)
	}
	if got := body.InnerHTML(); !strings.Contains(got, `id="probe"`) {
		t.Fatalf("probe node missing after re-render: %q", got)
	}
}

func TestRenderIntoNodeMismatch(t *testing.T) {
	win := newTestWindow(t)

	// The target is the <body> element, so rendering a <div> must fail.
	view := &swapView{render: func() ComponentOrHTML {
		return Tag("div")
	}}
	_, err := RenderComponentInto(win, view)
	if err == nil {
		t.Fatal("expected an error for a non-body render")
	}
	if _, ok := err.(ElementMismatchError); !ok {
		t.Fatalf("expected ElementMismatchError, got %T: %v", err, err)
	}
	want := `formic: RenderIntoNode: expected Component.Render to return a "body", found "div"`
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestRenderBodyExpectsBody(t *testing.T) {
	cases := []struct {
		name      string
		render    ComponentOrHTML
		wantPanic string
	}{
		{
			name:      "div",
			render:    Tag("div"),
			wantPanic: `formic: RenderBody: expected Component.Render to return a "body", found "div"`,
		},
		{
			name:      "text",
			render:    Text("Hello world!"),
			wantPanic: `formic: RenderBody: expected Component.Render to return a "body", found ""`,
		},
		{
			name:      "nil",
			render:    nil,
			wantPanic: `formic: RenderBody: expected Component.Render to return a "body", found "noscript"`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			win := newTestWindow(t)
			UseGostDOM(win)

			render := c.render
			got := recoverStr(func() {
				RenderBody(&swapView{render: func() ComponentOrHTML {
					return render
				}}, func(Msg) {})
			})
			if got != c.wantPanic {
				t.Fatalf("got panic %q want %q", got, c.wantPanic)
			}
		})
	}
}
