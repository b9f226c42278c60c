// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements linear (Hookean) elasticity for flex meshes, with the
// stiffness expressed as a quadratic form over edge elongations
type LinElast struct {
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	Damp float64 // Rayleigh damping coefficient
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	hasE := false
	for _, p := range prms {
		switch p.N {
		case "young":
			o.E = p.V
			hasE = true
		case "poisson":
			o.Nu = p.V
		case "damping":
			o.Damp = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is incorrect", p.N)
		}
	}
	if !hasE {
		return chk.Err("lin-elast: parameter 'young' is missing")
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("lin-elast: 'poisson' must be within [0, 0.5); %g is invalid", o.Nu)
	}
	if o.Damp < 0 {
		return chk.Err("lin-elast: 'damping' cannot be negative")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "young", V: 1e6},
		&dbf.P{N: "poisson", V: 0.3},
		&dbf.P{N: "damping", V: 0},
	}
}

// Lame returns the Lamé coefficients scaled by the element volume:
//
//	μ = E/(2(1+ν))·vol   λ = Eν/((1+ν)(1−2ν))·vol
func (o LinElast) Lame(vol float64) (μ, λ float64) {
	μ = o.E / (2.0 * (1.0 + o.Nu)) * vol
	λ = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu)) * vol
	return
}
