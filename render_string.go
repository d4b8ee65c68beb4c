package formic

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// voidElements have no closing tag when serialized.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// RenderString renders the given Component to an HTML string via a pure-Go
// walk of its Render output, without touching a DOM. Tags, text, innerHTML,
// classes, attributes, and scalar properties are preserved; styles and event
// listeners are omitted.
func RenderString(c Component) string {
	root := cloneC(c.Render(nil))
	if root == nil {
		return ""
	}
	return htmlString(root)
}

// RenderHTML returns the in-memory HTML tree produced by Component.Render.
// This bypasses DOM reconciliation and does not touch jsObject.
func RenderHTML(c Component) *HTML {
	return cloneC(c.Render(nil))
}

// htmlString serializes an HTML tree to a string.
func htmlString(h *HTML) string {
	// text node
	if h.tag == "" {
		if h.innerHTML != "" {
			return h.innerHTML
		}
		return html.EscapeString(h.text)
	}
	var sb strings.Builder
	sb.WriteString("<" + h.tag)
	for _, attr := range serializedAttrs(h) {
		sb.WriteString(" " + attr)
	}
	sb.WriteString(">")
	if _, void := voidElements[h.tag]; void {
		return sb.String()
	}
	if h.innerHTML != "" {
		sb.WriteString(h.innerHTML)
	} else {
		for _, child := range h.children {
			if ch, ok := child.(*HTML); ok {
				sb.WriteString(htmlString(ch))
			}
		}
	}
	sb.WriteString("</" + h.tag + ">")
	return sb.String()
}

// serializedAttrs flattens classes, attributes, and scalar properties into
// sorted attribute text so output is deterministic.
func serializedAttrs(h *HTML) []string {
	var attrs []string
	if len(h.classes) > 0 {
		names := make([]string, 0, len(h.classes))
		for name := range h.classes {
			names = append(names, name)
		}
		sort.Strings(names)
		attrs = append(attrs, `class="`+html.EscapeString(strings.Join(names, " "))+`"`)
	}
	for name, value := range h.attributes {
		attrs = append(attrs, attrText(name, value))
	}
	for name, value := range h.properties {
		// Properties use DOM spellings; serialize the reflected attribute.
		if name == "htmlFor" {
			name = "for"
		}
		switch v := value.(type) {
		case bool:
			if v {
				attrs = append(attrs, html.EscapeString(name))
			}
		case string, int, int64, float64:
			attrs = append(attrs, attrText(name, v))
		}
	}
	for name, value := range h.dataset {
		attrs = append(attrs, attrText("data-"+name, value))
	}
	sort.Strings(attrs)
	return attrs
}

func attrText(name string, value interface{}) string {
	return html.EscapeString(name) + `="` + html.EscapeString(fmt.Sprint(value)) + `"`
}

// cloneC converts a ComponentOrHTML into a pure *HTML tree by invoking Render
// and recursing. It does not perform DOM operations.
func cloneC(co ComponentOrHTML) *HTML {
	if co == nil {
		return nil
	}
	switch v := co.(type) {
	case *HTML:
		h2 := &HTML{
			tag:        v.tag,
			text:       v.text,
			innerHTML:  v.innerHTML,
			classes:    v.classes,
			attributes: v.attributes,
			properties: v.properties,
			dataset:    v.dataset,
		}
		for _, child := range v.children {
			if c := cloneC(child); c != nil {
				h2.children = append(h2.children, c)
			}
		}
		return h2
	case Component:
		return cloneC(v.Render(nil))
	case List:
		// A list cannot be a root; wrap it the way the DOM renderer would
		// reject it, by taking the first resolvable element.
		for _, child := range v {
			if c := cloneC(child); c != nil {
				return c
			}
		}
		return nil
	default:
		return nil
	}
}
