// Package elem defines markup to create DOM elements.
package elem

import (
	"github.com/octoberswimmer/formic"
)

// Anchor (or anchor element) creates a hyperlink to other web pages, files,
// locations within the same page, email addresses, or any other URL.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/a
func Anchor(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("a", markup...)
}

// Body represents the content of an HTML document. There can be only one
// body element in a document.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/body
func Body(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("body", markup...)
}

// Break produces a line break in text (carriage-return). It is useful for
// writing a poem or an address, where the division of lines is significant.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/br
func Break(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("br", markup...)
}

// Button represents a clickable button, used to submit forms or anywhere in
// a document for accessible, standard button functionality.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/button
func Button(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("button", markup...)
}

// Code displays its contents styled in a fashion intended to indicate that
// the text is a short fragment of computer code.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/code
func Code(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("code", markup...)
}

// Div is the generic container for flow content. It has no effect on the
// content or layout until styled using CSS.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/div
func Div(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("div", markup...)
}

// Footer represents a footer for its nearest sectioning content or
// sectioning root element.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/footer
func Footer(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("footer", markup...)
}

// Form represents a document section containing interactive controls for
// submitting information.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/form
func Form(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("form", markup...)
}

// Header represents introductory content, typically a group of introductory
// or navigational aids.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/header
func Header(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("header", markup...)
}

// Heading1 represents the highest section level heading.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/Heading_Elements
func Heading1(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("h1", markup...)
}

// Heading2 represents a second level section heading.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/Heading_Elements
func Heading2(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("h2", markup...)
}

// Heading3 represents a third level section heading.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/Heading_Elements
func Heading3(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("h3", markup...)
}

// Heading4 represents a fourth level section heading.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/Heading_Elements
func Heading4(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("h4", markup...)
}

// Input is used to create interactive controls for web-based forms in order
// to accept data from the user.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/input
func Input(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("input", markup...)
}

// Label represents a caption for an item in a user interface.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/label
func Label(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("label", markup...)
}

// ListItem is used to represent an item in a list.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/li
func ListItem(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("li", markup...)
}

// Paragraph represents a paragraph of text.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/p
func Paragraph(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("p", markup...)
}

// Preformatted represents preformatted text which is to be presented exactly
// as written in the HTML file.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/pre
func Preformatted(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("pre", markup...)
}

// Section represents a standalone section of functionality contained within
// an HTML document, which doesn't have a more specific semantic element to
// represent it.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/section
func Section(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("section", markup...)
}

// Span is a generic inline container for phrasing content, which does not
// inherently represent anything.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/span
func Span(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("span", markup...)
}

// Strong indicates that its contents have strong importance, seriousness, or
// urgency. Browsers typically render the contents in bold type.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/strong
func Strong(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("strong", markup...)
}

// TextArea represents a multi-line plain-text editing control.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/textarea
func TextArea(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("textarea", markup...)
}

// UnorderedList represents an unordered list of items, namely a collection
// of items that do not have a numerical ordering.
//
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/ul
func UnorderedList(markup ...formic.MarkupOrChild) *formic.HTML {
	return formic.Tag("ul", markup...)
}
