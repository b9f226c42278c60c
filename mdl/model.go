// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements material models for flexible (deformable) bodies
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for flex material models
type Model interface {
	Init(prms dbf.Params) error // initialises model with given parameters
	GetPrms() dbf.Params        // gets (an example) of parameters
}

// New returns a new model from the database
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available flex material models; modelname => allocator
var allocators = map[string]func() Model{}
