// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the per-element numerics of flex meshes: rest-geometry
// bases, metric tensors over edge elongations, and nodal force assembly
package ele

import "gonum.org/v1/gonum/spatial/r3"

// Volume returns the volume of the tetrahedron with vertex indices v into x.
// The sign follows the stencil's vertex ordering convention; the host must
// provide non-degenerate (non-zero-volume) rest geometry.
func Volume(x []r3.Vec, v []int) float64 {
	edge1 := r3.Sub(x[v[1]], x[v[0]])
	edge2 := r3.Sub(x[v[2]], x[v[0]])
	edge3 := r3.Sub(x[v[3]], x[v[0]])
	return r3.Dot(r3.Cross(edge2, edge1), edge3) / 6.0
}

// Basis computes the local strain basis of one edge of a tetrahedron: the
// symmetrized tensor product of the area normals of the two faces not adjacent
// to the edge, normalized by 36*2*vol². This is equivalent to linear finite
// elements but in a coordinate-free formulation, so it composes directly with
// the edge-length-based force law. B is the [9] row-major output.
func Basis(B []float64, x []r3.Vec, v []int, faceL, faceR []int, vol float64) {
	normalL := r3.Cross(
		r3.Sub(x[v[faceL[1]]], x[v[faceL[0]]]),
		r3.Sub(x[v[faceL[2]]], x[v[faceL[0]]]),
	)
	normalR := r3.Cross(
		r3.Sub(x[v[faceR[1]]], x[v[faceR[0]]]),
		r3.Sub(x[v[faceR[2]]], x[v[faceR[0]]]),
	)
	l := [3]float64{normalL.X, normalL.Y, normalL.Z}
	r := [3]float64{normalR.X, normalR.Y, normalR.Z}
	s := 1.0 / (36.0 * 2.0 * vol * vol)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B[3*i+j] = (l[i]*r[j] + r[i]*l[j]) * s
		}
	}
}
