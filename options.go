package formic

import (
	"context"
)

// ProgramOption is used to set options when initializing a Program. Program
// can accept a variable number of options.
//
// Example usage:
//
//	p := NewProgram(model, WithContext(ctx), WithoutCatchPanics())
type ProgramOption func(*Program)

// WithContext lets you specify a context in which to run the Program. This is
// useful if you want to cancel the execution from outside. When a Program gets
// cancelled it will exit with an error ErrProgramKilled.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) {
		p.ctx = ctx
	}
}

// WithoutCatchPanics disables the panic catching that formic does by default.
// If panic catching is disabled the panic propagates out of [Program.Run]
// with its original stack.
func WithoutCatchPanics() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withoutCatchPanics
	}
}

// WithoutRenderer disables the renderer. When this is set the program runs
// its update loop without drawing anything. This can be useful for driving a
// model from tests or for running a program headless.
func WithoutRenderer() ProgramOption {
	return func(p *Program) {
		p.renderer = &nilRenderer{}
	}
}

// WithFilter supplies an event filter that will be invoked before formic
// processes a Msg. The event filter can return any Msg which will then get
// handled by the program instead of the original event. If the event filter
// returns nil, the event will be ignored and the program will not process it.
//
// As an example, this could be used to prevent a program from shutting down
// if there are unsaved changes.
//
// Example:
//
//	func filter(m formic.Model, msg formic.Msg) formic.Msg {
//		if _, ok := msg.(formic.QuitMsg); !ok {
//			return msg
//		}
//
//		model := m.(myModel)
//		if model.hasChanges {
//			return nil
//		}
//
//		return msg
//	}
//
//	p := formic.NewProgram(model, formic.WithFilter(filter))
func WithFilter(filter func(Model, Msg) Msg) ProgramOption {
	return func(p *Program) {
		p.filter = filter
	}
}
