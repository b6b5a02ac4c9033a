package geometry

// Matrix is a 2D affine transform in row-major order:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0  1  |
//
// It is used by the flight overlay to express morph transforms (scaling a
// widget about its center while its bounding rectangle travels).
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

// TranslationMatrix returns a transform that translates by (tx, ty).
func TranslationMatrix(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, TX: tx, TY: ty}
}

// ScaleMatrix returns a transform that scales by (sx, sy) about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// ScaleAbout returns a transform that scales by (sx, sy) about the given point.
func ScaleAbout(sx, sy float64, center Offset) Matrix {
	return TranslationMatrix(center.X, center.Y).
		Multiply(ScaleMatrix(sx, sy)).
		Multiply(TranslationMatrix(-center.X, -center.Y))
}

// Multiply returns the composition m * other (other applied first).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		TX: m.A*other.TX + m.C*other.TY + m.TX,
		TY: m.B*other.TX + m.D*other.TY + m.TY,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.C*p.Y + m.TX,
		Y: m.B*p.X + m.D*p.Y + m.TY,
	}
}

// IsIdentity reports whether the matrix is (approximately) the identity.
func (m Matrix) IsIdentity() bool {
	return floatEqual(m.A, 1) && floatEqual(m.B, 0) &&
		floatEqual(m.C, 0) && floatEqual(m.D, 1) &&
		floatEqual(m.TX, 0) && floatEqual(m.TY, 0)
}
