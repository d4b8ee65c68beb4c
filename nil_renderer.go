package formic

// nilRenderer discards renders. It satisfies the renderer interface for
// programs that only exercise the update loop, such as tests.
type nilRenderer struct{}

func (nilRenderer) start() {}

func (nilRenderer) render(Component, func(Msg)) {}
