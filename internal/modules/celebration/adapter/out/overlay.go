package out

// Overlay is the modal layer's visibility. Hidden mirrors the accessibility
// hidden attribute and is always the inverse of visible.
type Overlay struct {
	visible bool
}

func NewOverlay() *Overlay { return &Overlay{} }

func (o *Overlay) Show() { o.visible = true }

func (o *Overlay) Hide() { o.visible = false }

func (o *Overlay) Visible() bool { return o.visible }

func (o *Overlay) Hidden() bool { return !o.visible }
