package formic

import "sync"

// standardRenderer renders the model into the DOM. The first render attaches
// the component tree to the root node (or the document body); subsequent
// renders are batched through the animation frame scheduler.
type standardRenderer struct {
	rootNode jsObject
	rendered bool

	mtx *sync.Mutex
}

// newRenderer creates a renderer that draws into the document body.
func newRenderer() renderer {
	return &standardRenderer{
		mtx: &sync.Mutex{},
	}
}

// newNodeRenderer creates a renderer that draws into the given root node.
func newNodeRenderer(node jsObject) renderer {
	return &standardRenderer{
		mtx:      &sync.Mutex{},
		rootNode: node,
	}
}

// start starts the renderer.
func (r *standardRenderer) start() {
	// The renderer can be restarted after a stop, so reset the initial
	// render state.
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.rendered = false
}

func isZeroValue(v jsObject) bool {
	return v == nil || !v.Truthy()
}

func (r *standardRenderer) render(c Component, send func(Msg)) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.rendered {
		rerender(c, send)
		return
	}
	r.rendered = true
	if !isZeroValue(r.rootNode) {
		if err := renderIntoNode("RenderIntoNode", r.rootNode, c, send); err != nil {
			panic(err)
		}
		return
	}
	RenderBody(c, send)
}
