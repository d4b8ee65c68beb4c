// Package forms provides reusable form components: a labelled text input
// bound to a field.Model snapshot, a submit button, and a form wrapper that
// emits a message on submission.
//
// The components hold no state of their own. Each render receives the
// current field snapshot as a prop, and user interaction is reported to the
// application's update function through the messages in this package, keyed
// by the field's ID.
package forms

// ChangedMsg reports that the identified field's input content was replaced.
type ChangedMsg struct {
	ID    string
	Value string
}

// BlurredMsg reports that the identified field's input lost focus.
type BlurredMsg struct {
	ID string
}

// SubmittedMsg reports that a form was submitted.
type SubmittedMsg struct{}
