// Package field implements the state machine behind a single validated form
// input.
//
// A Model tracks the raw string value of one input together with whether the
// input has lost focus at least once (it is "touched"). Validity is derived
// from the value on every read, and error display is derived from validity
// and touched, so there is no cached state to fall out of sync:
//
//	m := field.New(validate.NonEmpty)
//	m = m.Change("Sam") // user typed
//	m = m.Blur()        // input lost focus
//	m.HasError()        // false: "Sam" is valid
//
// Model is a value type. Every operation returns a new Model and leaves the
// receiver unchanged, so snapshots handed to components stay stable while the
// application's update function advances its own copy.
package field

// Validator reports whether a raw input value is acceptable. Validators must
// be pure; they are invoked on every Valid or HasError read.
type Validator func(value string) bool

// Msg is a message that advances a field Model. The application's update
// function constructs one from a DOM or terminal event and hands it to
// Update.
type Msg interface{}

// ChangedMsg replaces the field's value, as when the user edits the input.
type ChangedMsg struct {
	Value string
}

// BlurredMsg marks the field as touched, as when the input loses focus.
type BlurredMsg struct{}

// ResetMsg returns the field to its initial state: empty and untouched.
type ResetMsg struct{}

// Model is the state of one validated input. The zero value is an empty,
// untouched field that treats every value as valid.
type Model struct {
	value    string
	touched  bool
	validate Validator
}

// New returns an empty, untouched Model validated by validate. A nil
// validate treats every value as valid.
func New(validate Validator) Model {
	return Model{validate: validate}
}

// Update advances the Model by one message and returns the new state. A nil
// or unrecognized message leaves the state unchanged. Update never fails;
// every string is an acceptable value.
func (m Model) Update(msg Msg) Model {
	switch msg := msg.(type) {
	case ChangedMsg:
		m.value = msg.Value
	case BlurredMsg:
		m.touched = true
	case ResetMsg:
		m.value = ""
		m.touched = false
	}
	return m
}

// Change returns the Model with its value replaced. Touched is unaffected,
// so replacing a value with something invalid does not flag an error until
// the user leaves the input.
func (m Model) Change(value string) Model {
	return m.Update(ChangedMsg{Value: value})
}

// Blur returns the Model marked as touched. Blurring an already touched
// Model is a no-op; only Reset clears touched again.
func (m Model) Blur() Model {
	return m.Update(BlurredMsg{})
}

// Reset returns the Model to its initial state, keeping its validator.
func (m Model) Reset() Model {
	return m.Update(ResetMsg{})
}

// Value returns the current raw value.
func (m Model) Value() string {
	return m.value
}

// Touched reports whether the field has been blurred since construction or
// the last reset.
func (m Model) Touched() bool {
	return m.touched
}

// Valid reports whether the current value passes the field's validator. It
// is recomputed on every call.
func (m Model) Valid() bool {
	if m.validate == nil {
		return true
	}
	return m.validate(m.value)
}

// HasError reports whether the field should display its error: the value is
// invalid and the field has been touched. An untouched field never shows an
// error, no matter how invalid its value is.
func (m Model) HasError() bool {
	return !m.Valid() && m.touched
}
