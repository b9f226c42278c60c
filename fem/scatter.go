// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goflex/inp"

	"gonum.org/v1/gonum/spatial/r3"
)

// AddFlexForce scatters the per-vertex force buffer frc [3*nvert] of flex fid
// onto the host's generalized passive-force accumulator qfrc. Vertices of
// simple bodies map one-to-one onto translational dofs and are added directly;
// all other vertices go through the host's force/torque primitive at the
// vertex's current world position. This function only ever adds into qfrc.
func AddFlexForce(qfrc, frc []float64, m *inp.Model, d *State, fid int) {
	flx := m.Flexes[fid]
	fs := d.Flexes[fid]
	for v := 0; v < flx.Nverts(); v++ {
		bid := flx.VertBody[v]
		b := m.Bodies[bid]
		if !b.Simple {
			// this should only occur for pinned flex vertices
			f := r3.Vec{X: frc[3*v], Y: frc[3*v+1], Z: frc[3*v+2]}
			d.Applier.ApplyFT(f, fs.VertPos[v], bid, qfrc)
			continue
		}
		for x := 0; x < b.DofNum; x++ {
			qfrc[b.DofAdr+x] += frc[3*v+x]
		}
	}
}
