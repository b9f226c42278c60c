// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements element stencils and the derivation of flex mesh topology
package shp

import "github.com/cpmech/gosl/chk"

// Stencil holds the fixed local topology of one element shape: the number of
// vertices and edges, and the map from each local edge to its unordered pair of
// local vertices. Stencils are pure data; the two supported shapes are the
// package-level variables Tri and Tet.
type Stencil struct {
	Nverts int      // number of vertices
	Nedges int      // number of edges
	Edge   [][2]int // [Nedges] local edge => local vertex pair
	Face   [][]int  // [Nverts] local faces given by local vertices (3D only)
	E2f    [][2]int // [Nedges] local edge => the two faces not adjacent to it (3D only)
}

// Tri is the 3-node triangle stencil
var Tri = &Stencil{
	Nverts: 3,
	Nedges: 3,
	Edge:   [][2]int{{1, 2}, {2, 0}, {0, 1}},
}

// Tet is the 4-node tetrahedron stencil
var Tet = &Stencil{
	Nverts: 4,
	Nedges: 6,
	Edge:   [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {0, 3}, {1, 3}},
	Face:   [][]int{{2, 1, 0}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}},
	E2f:    [][2]int{{2, 3}, {1, 3}, {2, 1}, {1, 0}, {0, 2}, {0, 3}},
}

// ByDim returns the stencil corresponding to a mesh with given element
// dimensionality: 2 => triangle, 3 => tetrahedron
func ByDim(dim int) (*Stencil, error) {
	switch dim {
	case 2:
		return Tri, nil
	case 3:
		return Tet, nil
	}
	return nil, chk.Err("element dimensionality %d is not available; options are 2 (triangle) and 3 (tetrahedron)", dim)
}

// Npk returns the size of the packed (upper triangular) matrix over edge pairs
func (o *Stencil) Npk() int {
	return o.Nedges * (o.Nedges + 1) / 2
}
