// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/goflex/shp"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/spatial/r3"
)

// gradSquaredLengths computes the gradients of the squared lengths of all local
// edges of one cell with respect to the positions of their two endpoints
func gradSquaredLengths(grad [][2]r3.Vec, x []r3.Vec, v []int, st *shp.Stencil) {
	for e := 0; e < st.Nedges; e++ {
		a := v[st.Edge[e][0]]
		b := v[st.Edge[e][1]]
		grad[e][0] = r3.Sub(x[a], x[b])
		grad[e][1] = r3.Sub(x[b], x[a])
	}
}

// AddToForce accumulates the nodal forces of all cells into the global force
// buffer frc [3*nverts]. The caller must zero frc beforehand. elong holds the
// per-edge elongations, x the current vertex positions, and metric the packed
// metric tensors of all cells, st.Npk() values per cell. The result is the
// negative gradient of the elastic energy 0.5·elongᵀ·K·elong with respect to
// the vertex positions, hence a restoring force.
//
// Note that if the metric were diag(1/reference) this would yield a mass-spring
// model; the precomputed metric is what makes it continuum elasticity.
func AddToForce(frc, elong []float64, x []r3.Vec, top *shp.Topology, metric []float64) {
	st := top.St
	ne := st.Nedges
	npk := st.Npk()
	grad := make([][2]r3.Vec, ne)
	eloc := make([]float64, ne)
	K := utl.Alloc(ne, ne)
	floc := la.NewVector(3 * st.Nverts)

	for t, cell := range top.Cells {

		// length gradients with respect to dofs
		gradSquaredLengths(grad, x, cell.Verts, st)

		// elongations of the edges belonging to this cell
		for e := 0; e < ne; e++ {
			eloc[e] = elong[cell.Edges[e]]
		}

		// unpack triangular representation
		UnpackMetric(K, metric[t*npk:(t+1)*npk], ne)

		// local nodal force: contraction of elongations with the metric
		floc.Fill(0)
		for ed1 := 0; ed1 < ne; ed1++ {
			for ed2 := 0; ed2 < ne; ed2++ {
				coef := eloc[ed1] * K[ed1][ed2]
				for i := 0; i < 2; i++ {
					a := st.Edge[ed2][i]
					addScaled(floc[3*a:3*a+3], -coef, grad[ed2][i])
				}
			}
		}

		// insert into global force
		for i, vid := range cell.Verts {
			frc[3*vid+0] += floc[3*i+0]
			frc[3*vid+1] += floc[3*i+1]
			frc[3*vid+2] += floc[3*i+2]
		}
	}
}

// addScaled adds s*v to the three components of dst
func addScaled(dst []float64, s float64, v r3.Vec) {
	dst[0] += s * v.X
	dst[1] += s * v.Y
	dst[2] += s * v.Z
}
