// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// Cell represents one element of a flex mesh: its global vertex indices in
// stencil order and the global indices of its edges, ordered consistently with
// the stencil's edge table. Cells are derived once and never mutated.
type Cell struct {
	Id    int   // id of this cell
	Verts []int // [st.Nverts] global vertex indices
	Edges []int // [st.Nedges] global edge indices
}

// Topology holds the derived connectivity of one flex mesh: all cells with
// their edge index lists and the global deduplicated edge registry. Two cells
// sharing an edge reference the same edge index, regardless of element order.
type Topology struct {
	St    *Stencil // stencil of all cells
	Cells []*Cell  // [ncells] all cells
	Edges [][2]int // [nedges] edge => global vertex pair with pair[0] < pair[1]
}

// NewTopology derives the topology of a flex mesh from its raw element-to-vertex
// connectivity. known may hold edges whose indices are assigned by the host and
// must be preserved; it may be nil, in which case all edges are inferred. The
// number of derived edges equals the number of distinct vertex pairs.
func NewTopology(st *Stencil, elems [][]int, known [][2]int) (o *Topology, err error) {
	o = &Topology{St: st}
	e2i := make(map[[2]int]int)
	for _, pair := range known {
		a, b := pair[0], pair[1]
		if a > b {
			a, b = b, a
		}
		if _, ok := e2i[[2]int{a, b}]; ok {
			return nil, chk.Err("edge (%d,%d) appears twice in known edges list", a, b)
		}
		e2i[[2]int{a, b}] = len(o.Edges)
		o.Edges = append(o.Edges, [2]int{a, b})
	}
	o.Cells = make([]*Cell, len(elems))
	for t, v := range elems {
		if len(v) != st.Nverts {
			return nil, chk.Err("cell %d has %d vertices; stencil requires %d", t, len(v), st.Nverts)
		}
		cell := &Cell{Id: t, Verts: v, Edges: make([]int, st.Nedges)}
		for e := 0; e < st.Nedges; e++ {
			a, b := v[st.Edge[e][0]], v[st.Edge[e][1]]
			if a > b {
				a, b = b, a
			}
			idx, ok := e2i[[2]int{a, b}]
			if !ok {
				idx = len(o.Edges)
				e2i[[2]int{a, b}] = idx
				o.Edges = append(o.Edges, [2]int{a, b})
			}
			cell.Edges[e] = idx
		}
		o.Cells[t] = cell
	}
	return
}

// Nedges returns the number of deduplicated edges
func (o *Topology) Nedges() int {
	return len(o.Edges)
}
