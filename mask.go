package retro

// ShapeLayer is one filled shape inside a Mask. Its path is expressed in the
// masked view's local coordinates.
type ShapeLayer struct {
	Name     string
	Path     Path
	FillRule FillRule
}

// NewShapeLayer creates a layer filling path with the non-zero rule.
func NewShapeLayer(name string, path Path) *ShapeLayer {
	return &ShapeLayer{Name: name, Path: path}
}

// Contains reports whether the local point pt is covered by the layer.
func (l *ShapeLayer) Contains(pt Vec2) bool {
	return l.Path.Contains(pt, l.FillRule)
}

// Mask limits which pixels of a view are visible: a pixel shows where any of
// the mask's layers covers it. An empty mask hides the whole view.
type Mask struct {
	layers []*ShapeLayer
}

// NewMask creates a mask from the given layers.
func NewMask(layers ...*ShapeLayer) *Mask {
	return &Mask{layers: layers}
}

// AddLayer appends a layer to the mask.
func (m *Mask) AddLayer(l *ShapeLayer) {
	m.layers = append(m.layers, l)
}

// Layers returns the mask's layers. The returned slice MUST NOT be mutated.
func (m *Mask) Layers() []*ShapeLayer {
	return m.layers
}

// Contains reports whether the local point pt is visible through the mask.
func (m *Mask) Contains(pt Vec2) bool {
	for _, l := range m.layers {
		if l.Contains(pt) {
			return true
		}
	}
	return false
}

// SetMask sets a mask for this view. The mask's shapes are relative to the
// view's own bounds and are not part of the view tree.
func (v *View) SetMask(m *Mask) {
	v.mask = m
}

// ClearMask removes the mask from this view.
func (v *View) ClearMask() {
	v.mask = nil
}

// GetMask returns the current mask, or nil if no mask is set.
func (v *View) GetMask() *Mask {
	return v.mask
}
