// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Body holds the data of one rigid body needed to route vertex forces into the
// host's generalized coordinates
type Body struct {
	Simple bool // vertex motion maps one-to-one onto translational dofs
	DofAdr int  // address of the first dof in the host's global dof vector
	DofNum int  // number of dofs
	Plugin int  // id of the plugin instance owning this body; -1 if none
}

// PluginData holds the configuration of one plugin instance
type PluginData struct {
	Name  string            // plugin name in the registry
	Attrs map[string]string // named string-valued attributes
}

// Model holds the host model data consumed by plugin instances. The model is
// immutable during stepping; all per-step state lives in fem.State.
type Model struct {
	Bodies   []*Body       // [nbody] all bodies; body 0 is the world
	Flexes   []*Flex       // [nflex] all flex meshes
	Plugins  []*PluginData // [ninstance] plugin instance configurations
	Timestep float64       // simulation timestep
}

// AttrFloat parses a named plugin attribute as a floating point number. A
// missing attribute returns defval when required is false and an error
// otherwise. Parse failures are errors in both cases.
func (o *PluginData) AttrFloat(name string, defval float64, required bool) (float64, error) {
	txt, ok := o.Attrs[name]
	if !ok {
		if required {
			return 0, chk.Err("attribute %q is missing in configuration of plugin %q", name, o.Name)
		}
		return defval, nil
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(txt), 64)
	if err != nil {
		return 0, chk.Err("cannot parse attribute %q = %q of plugin %q", name, txt, o.Name)
	}
	return val, nil
}
