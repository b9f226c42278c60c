// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

func verbose() {
	chk.Verbose = true
}

func Test_attrs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("attrs01. plugin attribute parsing")

	pdat := &PluginData{
		Name: "flex-solid",
		Attrs: map[string]string{
			"young":   "2.5e4",
			"poisson": " 0.4 ",
			"damping": "not-a-number",
		},
	}

	val, err := pdat.AttrFloat("young", 0, true)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "young", 1e-15, val, 2.5e4)

	// surrounding whitespace is tolerated
	val, err = pdat.AttrFloat("poisson", 0, true)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "poisson", 1e-15, val, 0.4)

	// unparsable value fails even when optional
	if _, err = pdat.AttrFloat("damping", 0, false); err == nil {
		tst.Errorf("unparsable attribute must fail\n")
		return
	}

	// missing: default when optional, error when required
	val, err = pdat.AttrFloat("thickness", 1.25, false)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "thickness", 1e-15, val, 1.25)
	if _, err = pdat.AttrFloat("thickness", 0, true); err == nil {
		tst.Errorf("missing required attribute must fail\n")
		return
	}
}

func Test_flex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex01. topology derivation")

	flx := &Flex{
		Dim: 3,
		Vert: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 1, Y: 1, Z: 1},
		},
		Elem:     [][]int{{0, 1, 2, 3}, {1, 2, 3, 4}},
		VertBody: []int{1, 2, 3, 4, 5},
	}
	if err := flx.Derive(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Ints(tst, "counts", []int{flx.Nverts(), flx.Nedges()}, []int{5, 9})

	// unsupported dimensionality is a configuration error
	bad := &Flex{Dim: 1, Elem: [][]int{{0, 1}}}
	if err := bad.Derive(); err == nil {
		tst.Errorf("dim = 1 must fail\n")
		return
	}
}
