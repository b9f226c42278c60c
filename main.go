// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// goflex demo: a two-tetrahedron flex body is stretched, released and stepped
// against a stub host; the stretched edge's length decays back to rest and is
// plotted in the terminal
package main

import (
	"github.com/cpmech/goflex/fem"
	"github.com/cpmech/goflex/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input parameters
	nsteps := io.ArgToInt(0, 400)
	young := io.ArgToString(1, "1000")
	damping := io.ArgToString(2, "0.05")

	// message
	io.PfWhite("\nGoflex -- passive elasticity for flexible bodies\n")
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"number of steps", "nsteps", nsteps,
		"Young's modulus", "young", young,
		"damping coefficient", "damping", damping,
	))

	// two tetrahedra glued on a shared triangle; vertices 0-2 are anchored and
	// vertex 4 starts displaced from its rest position
	flx := &inp.Flex{
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
		chk.Panic("cannot derive flex topology: %v", err)
	}
	nv := flx.Nverts()

	// every vertex is a simple 3-dof body owned by plugin instance 0
	bodies := []*inp.Body{{Plugin: -1}}
	for i := 0; i < nv; i++ {
		bodies = append(bodies, &inp.Body{Simple: true, DofAdr: 3 * i, DofNum: 3, Plugin: 0})
	}
	m := &inp.Model{
		Bodies: bodies,
		Flexes: []*inp.Flex{flx},
		Plugins: []*inp.PluginData{{
			Name:  "flex-solid",
			Attrs: map[string]string{"young": young, "poisson": "0.3", "damping": damping},
		}},
		Timestep: 1e-3,
	}

	// host state: current positions start at rest except for vertex 4
	pos := make([]r3.Vec, nv)
	copy(pos, flx.Vert)
	pos[4] = r3.Vec{X: 1.3, Y: 1.4, Z: 1.2}
	ne := flx.Nedges()
	d := &fem.State{
		Flexes: []*fem.FlexState{{
			VertPos:  pos,
			EdgeLen:  make([]float64, ne),
			EdgeLen0: make([]float64, ne),
		}},
		Qfrc: make([]float64, 3*nv),
	}
	fs := d.Flexes[0]
	for i, pair := range flx.Top.Edges {
		fs.EdgeLen0[i] = r3.Norm(r3.Sub(flx.Vert[pair[0]], flx.Vert[pair[1]]))
	}

	// create plugin instance
	if err := fem.CreateInstance(m, d, 0); err != nil {
		chk.Panic("cannot create plugin instance: %v", err)
	}
	defer fem.FreeInstance(0)

	// watched edge: the one between vertices 3 and 4
	watched := -1
	for i, pair := range flx.Top.Edges {
		if pair[0] == 3 && pair[1] == 4 {
			watched = i
		}
	}
	restLen := fs.EdgeLen0[watched]

	// step a semi-implicit point-mass integrator; the passive-force stage runs
	// after edge lengths are updated and before integration
	vel := make([]r3.Vec, nv)
	var series []float64
	for step := 0; step < nsteps; step++ {
		for i, pair := range flx.Top.Edges {
			fs.EdgeLen[i] = r3.Norm(r3.Sub(pos[pair[0]], pos[pair[1]]))
		}
		la.Vector(d.Qfrc).Fill(0)
		fem.ComputePassive(m, d)
		for v := 3; v < nv; v++ { // vertices 0-2 are anchored
			f := r3.Vec{X: d.Qfrc[3*v], Y: d.Qfrc[3*v+1], Z: d.Qfrc[3*v+2]}
			vel[v] = r3.Add(vel[v], r3.Scale(m.Timestep, f))
			pos[v] = r3.Add(pos[v], r3.Scale(m.Timestep, vel[v]))
		}
		if step%4 == 0 {
			series = append(series, fs.EdgeLen[watched])
		}
	}

	// results
	io.Pf("\n%s\n\n", asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Caption(io.Sf("length of edge (3,4): rest = %.4f, final = %.4f", restLen, fs.EdgeLen[watched])),
	))
	io.Pf("final force norm = %g\n", la.Vector(d.Qfrc).Norm())
}
