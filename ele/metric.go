// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/goflex/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MetricTensor assembles the stiffness of one element as a quadratic form over
// edge elongations:
//
//	K[i,j] = μ·tr(Bi·Bj) + λ·tr(Bi)·tr(Bj)
//
// where Bi is the strain basis of local edge i and μ, λ are the volume-scaled
// Lamé coefficients. The result is packed into metric (len = st.Npk()) as the
// upper triangle in row-major edge-pair order. Computed once per element; the
// material is linear and the metric is fixed for the lifetime of the instance.
func MetricTensor(metric []float64, st *shp.Stencil, μ, λ float64, basis [][]float64) {
	ne := st.Nedges
	trE := make([]float64, ne)
	trEE := utl.Alloc(ne, ne)

	// first invariant i.e. trace(strain)
	for e := 0; e < ne; e++ {
		for i := 0; i < 3; i++ {
			trE[e] += basis[e][4*i]
		}
	}

	// second invariant i.e. trace(strain²)
	for ed1 := 0; ed1 < ne; ed1++ {
		for ed2 := 0; ed2 < ne; ed2++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					trEE[ed1][ed2] += basis[ed1][3*i+j] * basis[ed2][3*j+i]
				}
			}
		}
	}

	// assembly in triangular representation
	id := 0
	for ed1 := 0; ed1 < ne; ed1++ {
		for ed2 := ed1; ed2 < ne; ed2++ {
			metric[id] = μ*trEE[ed1][ed2] + λ*trE[ed1]*trE[ed2]
			id++
		}
	}
	chk.IntAssert(id, st.Npk())
}

// UnpackMetric expands the packed upper-triangular stiffness of one element
// into the full symmetric K [nedges][nedges]
func UnpackMetric(K [][]float64, metric []float64, nedges int) {
	id := 0
	for ed1 := 0; ed1 < nedges; ed1++ {
		for ed2 := ed1; ed2 < nedges; ed2++ {
			K[ed1][ed2] = metric[id]
			K[ed2][ed1] = metric[id]
			id++
		}
	}
}
