package retro

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the view's affine matrix in its parent's
// space. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Scale(sx*cos(flip), sy) -> Translate(x+w/2, y+h/2)
//
// The flip is an orthographic projection of a rotation around the vertical
// axis: past a quarter turn the horizontal scale goes negative and the view
// shows mirrored, like the back of a card.
func computeLocalTransform(v *View) [6]float64 {
	hw := v.Frame.Width / 2
	hh := v.Frame.Height / 2
	sx := v.ScaleX
	if v.Flip != 0 {
		sx *= math.Cos(v.Flip)
	}
	sy := v.ScaleY
	return [6]float64{
		sx, 0, 0, sy,
		-hw*sx + v.Frame.X + hw,
		-hh*sy + v.Frame.Y + hh,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes worldTransform and worldAlpha for v and its
// descendants. Views are few and transitions mutate them every frame, so the
// whole tree is recomputed on each call.
func updateWorldTransform(v *View, parentTransform [6]float64, parentAlpha float64) {
	v.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(v))
	v.worldAlpha = parentAlpha * v.Alpha
	for _, child := range v.children {
		updateWorldTransform(child, v.worldTransform, v.worldAlpha)
	}
}

// WorldTransform returns the view's most recently computed world matrix.
func (v *View) WorldTransform() [6]float64 {
	return v.worldTransform
}

// WorldToLocal converts a world-space point to this view's local coordinate space.
func (v *View) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(v.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (v *View) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(v.worldTransform, lx, ly)
}
