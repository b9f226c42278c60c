// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the data structures delivered by the host simulation:
// flex meshes, rigid bodies and per-instance plugin configuration
package inp

import (
	"github.com/cpmech/goflex/shp"

	"gonum.org/v1/gonum/spatial/r3"
)

// Flex holds the host description of one deformable mesh: elements (triangles
// or tetrahedra) sharing vertices, each vertex bound to a rigid body. The host
// validates this description; goflex derives the edge topology from it, once.
type Flex struct {

	// input (host-owned description)
	Dim      int      // element dimensionality: 2 or 3
	Vert     []r3.Vec // [nvert] rest-configuration vertex positions
	Elem     [][]int  // [ncell] element => vertex lists, in stencil order
	VertBody []int    // [nvert] vertex => body id
	EdgeIdx  [][2]int // edges with host-assigned indices; may be nil

	// derived (once, by Derive)
	Top *shp.Topology // cells with edge lists and the deduplicated edge registry
}

// Derive builds the mesh topology. It must be called once, after the host
// description is complete and before any element computation.
func (o *Flex) Derive() (err error) {
	st, err := shp.ByDim(o.Dim)
	if err != nil {
		return
	}
	o.Top, err = shp.NewTopology(st, o.Elem, o.EdgeIdx)
	return
}

// Nverts returns the number of vertices
func (o *Flex) Nverts() int {
	return len(o.Vert)
}

// Nedges returns the number of deduplicated edges. Derive must have been called.
func (o *Flex) Nedges() int {
	return o.Top.Nedges()
}
