// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the passive-force plugin lifecycle: per-step host
// state views, the solid elasticity instance, scattering of vertex forces onto
// generalized coordinates, and the plugin/instance registries
package fem

import "gonum.org/v1/gonum/spatial/r3"

// FlexState holds the per-step host state of one flex mesh. All slices are
// host-owned views sized by the host; goflex only reads them.
type FlexState struct {
	VertPos  []r3.Vec  // [nvert] current world vertex positions
	EdgeLen  []float64 // [nedge] current deformed edge lengths
	EdgeLen0 []float64 // [nedge] reference edge lengths; only guaranteed to be populated from the first step onward, not at construction time
}

// Applier is the host primitive that applies a force at a world position to a
// rigid body, accumulating the equivalent force/torque into qfrc
type Applier interface {
	ApplyFT(frc, pnt r3.Vec, bid int, qfrc []float64)
}

// State gives plugin instances access to the per-step host data. The host owns
// it entirely; instances may only add into Qfrc, never overwrite, since other
// passive-force contributors write to the same accumulator in the same step.
type State struct {
	Flexes  []*FlexState // [nflex] per-flex views
	Qfrc    []float64    // global generalized passive-force accumulator
	Applier Applier      // rigid-body force application primitive
}
