package colorconv

import (
	"fmt"
)

// This package converts gamma-encoded sRGB colors into the additive,
// cylindrical, CIE and subtractive color models and back again. Everything
// assumes the sRGB primaries and the D65 white point, there is no chromatic
// adaptation.
//
// Notes:
//   - All functions are pure and safe to call from any number of goroutines.
//   - Degenerate inputs (zero chroma, zero luminance, full black) never yield
//     NaN, they resolve to fixed policy values documented on each converter.
//   - Inverse conversions clamp only at the final gamma encoding step, the
//     intermediate CIE values are never clamped.

var _ = fmt.Print

type Vec3 [3]float64
type Mat3 [3][3]float64

// clamp01 clamps value to [0,1]
func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// Matrix & vector utilities

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

// Mul returns the matrix product m*o
func (m Mat3) Mul(o Mat3) Mat3 { return mulMat3(m, o) }

// Apply multiplies the column vector v by m
func (m Mat3) Apply(v Vec3) Vec3 {
	x, y, z := mulMat3Vec(m, v)
	return Vec3{x, y, z}
}

// Inverted returns the inverse of m computed via the adjugate. It fails for
// singular matrices.
func (m Mat3) Inverted() (ans Mat3, err error) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return ans, fmt.Errorf("matrix is singular and cannot be inverted")
	}
	adj := Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	inv_det := 1 / det
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = inv_det * adj[i][j]
		}
	}
	return
}
