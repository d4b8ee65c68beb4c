package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a text input prompt.
type InputConfig struct {
	Message     string
	Default     string
	Help        string
	Placeholder string
	Validator   func(string) error
}

// Driver abstracts the terminal implementation so prompting logic can be
// tested without a real terminal and callers can swap implementations.
//
// Input shows one prompt and returns the submitted answer. A Driver should
// apply cfg.Validator when it can re-prompt in place; Field tolerates
// drivers that cannot and re-prompts itself.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// surveyDriver is the default Driver, prompting on the terminal through
// survey. Placeholder has no survey equivalent and is ignored.
type surveyDriver struct{}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	var out string
	input := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(input, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("prompt: %w", err)
}
