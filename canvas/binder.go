package canvas

// Binder builds canvases for the framebuffer bound to the current context.
type Binder struct {
	// NewPresenter is called once the context is current.
	NewPresenter func(width, height int) (Presenter, error)
	Options      []Option
}

// Bind creates the presenter and wraps it in a Canvas. The presenter is
// closed again if the canvas cannot be built.
func (b Binder) Bind(width, height int) (*Canvas, error) {
	p, err := b.NewPresenter(width, height)
	if err != nil {
		return nil, err
	}
	c, err := New(width, height, p, b.Options...)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return c, nil
}
