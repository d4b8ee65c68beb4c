// Package prompt runs the validated-field state machine over interactive
// terminal prompts, so the same validators that gate a browser form can gate
// CLI data entry.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/octoberswimmer/formic/field"
)

// Field prompts for a value and drives it through the given field machine:
// the submitted answer is applied with Change and the prompt ends with Blur,
// exactly as if the user had typed into a form input and left it.
//
// The machine's validator doubles as the driver's inline validator, so the
// default survey driver re-prompts in place while the value is invalid. For
// drivers without inline validation, Field checks HasError on the blurred
// model and prompts again, offering the rejected answer as the next default.
func Field(ctx context.Context, m field.Model, opts ...Option) (field.Model, error) {
	o := options{
		driver:       &surveyDriver{},
		message:      "Value",
		errorMessage: "invalid value",
	}
	for _, opt := range opts {
		opt(&o)
	}

	validator := func(value string) error {
		if !m.Change(value).Valid() {
			return errors.New(o.errorMessage)
		}
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return m, fmt.Errorf("prompt: %w", err)
		}
		value, err := o.driver.Input(ctx, InputConfig{
			Message:     o.message,
			Default:     o.defaultValue,
			Help:        o.help,
			Placeholder: o.placeholder,
			Validator:   validator,
		})
		if err != nil {
			return m, err
		}
		m = m.Change(value).Blur()
		if !m.HasError() {
			return m, nil
		}
		o.defaultValue = value
	}
}
