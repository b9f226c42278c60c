// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_stencil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stencil01. triangle and tetrahedron stencils")

	tri, err := ByDim(2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if tri.Nverts != 3 || tri.Nedges != 3 {
		tst.Errorf("triangle stencil has wrong counts: %d verts, %d edges\n", tri.Nverts, tri.Nedges)
		return
	}
	if tri.Npk() != 6 {
		tst.Errorf("triangle packed size must be 6; got %d\n", tri.Npk())
		return
	}

	tet, err := ByDim(3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if tet.Nverts != 4 || tet.Nedges != 6 {
		tst.Errorf("tetrahedron stencil has wrong counts: %d verts, %d edges\n", tet.Nverts, tet.Nedges)
		return
	}
	if tet.Npk() != 21 {
		tst.Errorf("tetrahedron packed size must be 21; got %d\n", tet.Npk())
		return
	}

	// each local edge must reference valid local vertices
	for e := 0; e < tet.Nedges; e++ {
		for i := 0; i < 2; i++ {
			if tet.Edge[e][i] < 0 || tet.Edge[e][i] >= tet.Nverts {
				tst.Errorf("edge %d references invalid vertex %d\n", e, tet.Edge[e][i])
				return
			}
		}
	}

	// the two faces paired with an edge must not contain both of its vertices
	for e := 0; e < tet.Nedges; e++ {
		for _, f := range tet.E2f[e] {
			count := 0
			for _, fv := range tet.Face[f] {
				if fv == tet.Edge[e][0] || fv == tet.Edge[e][1] {
					count++
				}
			}
			if count > 1 {
				tst.Errorf("face %d is adjacent to edge %d\n", f, e)
				return
			}
		}
	}

	// unsupported dimensionalities
	for _, dim := range []int{0, 1, 4} {
		if _, err := ByDim(dim); err == nil {
			tst.Errorf("ByDim(%d) must fail\n", dim)
			return
		}
	}
}

func Test_topology01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topology01. two tetrahedra glued on a shared triangle")

	// tets sharing the triangle (1,2,3)
	elems := [][]int{
		{0, 1, 2, 3},
		{1, 2, 3, 4},
	}
	top, err := NewTopology(Tet, elems, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// 6 + 6 - 3 shared edges
	chk.Ints(tst, "nedges", []int{top.Nedges()}, []int{9})

	// shared edges map to the same index in both cells
	c0, c1 := top.Cells[0], top.Cells[1]
	chk.Ints(tst, "edge (1,2)", []int{c0.Edges[1]}, []int{c1.Edges[0]}) // local edge {1,2} of c0, {0,1} of c1
	chk.Ints(tst, "edge (2,3)", []int{c0.Edges[3]}, []int{c1.Edges[1]}) // local edge {2,3} of c0, {1,2} of c1
	chk.Ints(tst, "edge (1,3)", []int{c0.Edges[5]}, []int{c1.Edges[2]}) // local edge {1,3} of c0, {2,0} of c1

	// registry pairs are sorted
	for i, pair := range top.Edges {
		if pair[0] >= pair[1] {
			tst.Errorf("edge %d pair %v is not sorted\n", i, pair)
			return
		}
	}

	// edge count is independent of insertion order
	rev := [][]int{elems[1], elems[0]}
	topr, err := NewTopology(Tet, rev, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Ints(tst, "nedges (reversed)", []int{topr.Nedges()}, []int{9})
}

func Test_topology02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topology02. host-assigned edge indices are honored")

	elems := [][]int{{0, 1, 2, 3}}
	known := [][2]int{{2, 0}, {0, 1}}
	top, err := NewTopology(Tet, elems, known)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	c := top.Cells[0]
	chk.Ints(tst, "edge (0,1)", []int{c.Edges[0]}, []int{1})
	chk.Ints(tst, "edge (2,0)", []int{c.Edges[2]}, []int{0})
	chk.Ints(tst, "nedges", []int{top.Nedges()}, []int{6})

	// duplicated known edges must fail
	if _, err := NewTopology(Tet, elems, [][2]int{{0, 1}, {1, 0}}); err == nil {
		tst.Errorf("duplicated known edge must fail\n")
		return
	}
}

func Test_topology03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("topology03. malformed connectivity")

	if _, err := NewTopology(Tet, [][]int{{0, 1, 2}}, nil); err == nil {
		tst.Errorf("cell with wrong vertex count must fail\n")
		return
	}

	// triangles work with the same builder
	top, err := NewTopology(Tri, [][]int{{0, 1, 2}, {1, 3, 2}}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Ints(tst, "nedges", []int{top.Nedges()}, []int{5}) // 3 + 3 - 1 shared
}
