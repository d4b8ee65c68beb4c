package formic

// renderer is the interface for formic renderers.
type renderer interface {
	// Start the renderer.
	start()

	// Render the model. The renderer decides whether this is an initial
	// render into the DOM or a scheduled re-render.
	render(Component, func(Msg))
}
