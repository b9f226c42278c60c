// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goflex/ele"
	"github.com/cpmech/goflex/inp"
	"github.com/cpmech/goflex/mdl"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Solid computes the passive elastic and damping forces of one 3D (tetrahedral)
// flex mesh. The metric tensors are precomputed from the rest configuration at
// construction and owned by the instance; every step, edge elongations are
// contracted through them into vertex forces and scattered onto the host dofs.
type Solid struct {

	// basic data
	Fid int // id of the flex mesh owned by this instance
	Nv  int // number of vertices
	Ne  int // number of edges

	// material
	Mdl *mdl.LinElast // linear elastic material with Rayleigh damping

	// precomputed at construction
	Stiff []float64 // [ncell*npk] packed metric tensors; fixed for the instance lifetime

	// scratchpad, recomputed @ each step
	elong []float64 // [Ne] edge elongations
	frc   la.Vector // [3*Nv] vertex forces

	// damping state
	prev   []float64 // [Ne] previous-step deformed lengths
	warmed bool      // prev has been initialised (first Compute call done)
}

// register plugin
func init() {
	SetPlugin(Info{
		Name:       "flex-solid",
		Attributes: []string{"young", "poisson", "damping"},
		Passive:    true,
		NStates:    func(m *inp.Model, instance int) int { return 0 },
	}, func(m *inp.Model, d *State, instance int) (Instance, error) {
		return NewSolid(m, instance)
	})
}

// NewSolid creates a solid elasticity instance for the flex mesh whose bodies
// are bound to plugin instance number `instance`. Configuration problems
// (missing or unparsable attributes) are recoverable: a warning is printed and
// no instance is created. A malformed model (wrong mesh dimensionality or a
// body claimed by a foreign instance) is fatal.
func NewSolid(m *inp.Model, instance int) (o *Solid, err error) {

	// material parameters
	pdat := m.Plugins[instance]
	prms, err := solidPrms(pdat)
	if err != nil {
		io.Pfred("invalid parameter specification in %q plugin: %v\n", pdat.Name, err)
		return nil, err
	}
	model, err := mdl.New("lin-elast")
	if err != nil {
		return nil, err
	}
	o = new(Solid)
	o.Mdl = model.(*mdl.LinElast)
	if err = o.Mdl.Init(prms); err != nil {
		io.Pfred("invalid parameter specification in %q plugin: %v\n", pdat.Name, err)
		return nil, err
	}

	// first body owned by this instance
	i0 := -1
	for i := 1; i < len(m.Bodies); i++ {
		if m.Bodies[i].Plugin == instance {
			i0 = i
			break
		}
	}
	if i0 < 0 {
		return nil, chk.Err("plugin instance %d does not own any body", instance)
	}

	// flex mesh bound to that body
	o.Fid = -1
	for i, flx := range m.Flexes {
		for _, bid := range flx.VertBody {
			if bid == i0 {
				o.Fid = i
			}
		}
	}
	if o.Fid < 0 {
		chk.Panic("no flex mesh binds to body %d of plugin instance %d", i0, instance)
	}
	flx := m.Flexes[o.Fid]
	if flx.Dim != 3 {
		chk.Panic("flex-solid requires a 3D (tetrahedral) mesh")
	}
	if flx.Top == nil {
		if e := flx.Derive(); e != nil {
			chk.Panic("cannot derive flex topology: %v", e)
		}
	}

	// every element vertex must be bound to this instance
	for _, cell := range flx.Top.Cells {
		for _, v := range cell.Verts {
			bid := flx.VertBody[v]
			if bid > 0 && m.Bodies[bid].Plugin != instance {
				chk.Panic("body %d does not have plugin instance %d", bid, instance)
			}
		}
	}

	// metric tensor of each cell, from rest geometry and material parameters
	st := flx.Top.St
	npk := st.Npk()
	o.Stiff = make([]float64, len(flx.Top.Cells)*npk)
	basis := utl.Alloc(st.Nedges, 9)
	for t, cell := range flx.Top.Cells {
		vol := ele.Volume(flx.Vert, cell.Verts)
		for e := 0; e < st.Nedges; e++ {
			ele.Basis(basis[e], flx.Vert, cell.Verts, st.Face[st.E2f[e][0]], st.Face[st.E2f[e][1]], vol)
		}
		μ, λ := o.Mdl.Lame(vol)
		ele.MetricTensor(o.Stiff[t*npk:(t+1)*npk], st, μ, λ, basis)
	}

	// buffers
	o.Nv = flx.Nverts()
	o.Ne = flx.Nedges()
	o.elong = make([]float64, o.Ne)
	o.frc = la.NewVector(3 * o.Nv)
	o.prev = make([]float64, o.Ne)
	return
}

// Compute computes the passive forces for the current step and adds them into
// the host accumulator. The host calls this exactly once per step, after
// updating vertex positions and edge lengths and before integration; no
// concurrent calls on the same instance.
func (o *Solid) Compute(m *inp.Model, d *State) {
	kD := o.Mdl.Damp / m.Timestep
	fs := d.Flexes[o.Fid]
	deformed := fs.EdgeLen
	ref := fs.EdgeLen0

	// reference lengths are only available from the first step onward
	if !o.warmed {
		copy(o.prev, ref)
		o.warmed = true
	}

	// elongation: elastic squared-length deviation from rest plus generalized
	// Rayleigh damping from the deviation from the previous step (Kharevych
	// et al. "Geometric, Variational Integrators for Computer Animation")
	for i := 0; i < o.Ne; i++ {
		o.elong[i] = deformed[i]*deformed[i] - ref[i]*ref[i] +
			(deformed[i]*deformed[i]-o.prev[i]*o.prev[i])*kD
	}

	// gradient of the elastic energy
	o.frc.Fill(0)
	ele.AddToForce(o.frc, o.elong, fs.VertPos, m.Flexes[o.Fid].Top, o.Stiff)

	// insert into passive force
	AddFlexForce(d.Qfrc, o.frc, m, d, o.Fid)

	// update stored lengths
	if kD > 0 {
		copy(o.prev, deformed)
	}
}

// Free releases all owned buffers
func (o *Solid) Free() {
	o.Stiff = nil
	o.elong = nil
	o.frc = nil
	o.prev = nil
	o.warmed = false
}

// solidPrms converts plugin attributes into material parameters. young and
// poisson are required; damping defaults to zero.
func solidPrms(pdat *inp.PluginData) (prms dbf.Params, err error) {
	for _, name := range []string{"young", "poisson"} {
		val, e := pdat.AttrFloat(name, 0, true)
		if e != nil {
			return nil, e
		}
		prms = append(prms, &dbf.P{N: name, V: val})
	}
	damp, err := pdat.AttrFloat("damping", 0, false)
	if err != nil {
		return nil, err
	}
	prms = append(prms, &dbf.P{N: "damping", V: damp})
	return
}
