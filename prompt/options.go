package prompt

type options struct {
	driver       Driver
	message      string
	help         string
	placeholder  string
	defaultValue string
	errorMessage string
}

// Option configures Field.
type Option func(*options)

// WithDriver overrides the terminal driver used for prompting.
func WithDriver(d Driver) Option {
	return func(o *options) {
		if d != nil {
			o.driver = d
		}
	}
}

// WithMessage sets the prompt message shown before the input.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// WithHelp sets the help text the driver may show on request.
func WithHelp(help string) Option {
	return func(o *options) {
		o.help = help
	}
}

// WithPlaceholder sets a placeholder for drivers that can display one.
func WithPlaceholder(placeholder string) Option {
	return func(o *options) {
		o.placeholder = placeholder
	}
}

// WithDefault sets the answer submitted when the user just presses enter.
func WithDefault(value string) Option {
	return func(o *options) {
		o.defaultValue = value
	}
}

// WithErrorMessage sets the message reported while the entered value fails
// the field's validator.
func WithErrorMessage(message string) Option {
	return func(o *options) {
		o.errorMessage = message
	}
}
