// Copyright 2017 The Goflex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goflex/inp"

	"github.com/cpmech/gosl/chk"
)

// Info holds the metadata of one plugin type
type Info struct {
	Name       string                               // unique plugin name
	Attributes []string                             // recognised attribute names
	Passive    bool                                 // plugin applies passive forces
	NStates    func(m *inp.Model, instance int) int // size of externally persisted state
}

// Instance is one living plugin instance bound to a model
type Instance interface {
	Compute(m *inp.Model, d *State) // computes forces for the current step
	Free()                          // releases all owned state
}

// AllocatorType defines a function that allocates a plugin instance
type AllocatorType func(m *inp.Model, d *State, instance int) (Instance, error)

// SetPlugin registers a new plugin type
func SetPlugin(info Info, fcn AllocatorType) {
	if _, ok := plugins[info.Name]; ok {
		chk.Panic("cannot register plugin %q because name exists already", info.Name)
	}
	plugins[info.Name] = info
	allocators[info.Name] = fcn
}

// GetInfo returns the metadata of a registered plugin type
func GetInfo(name string) Info {
	info, ok := plugins[name]
	if !ok {
		chk.Panic("cannot get information about plugin %q", name)
	}
	return info
}

// CreateInstance allocates plugin instance number `instance` using the model's
// per-instance configuration. A configuration error returns with no instance
// created and no partial state left behind; the simulation may continue with
// this instance inactive.
func CreateInstance(m *inp.Model, d *State, instance int) (err error) {
	if _, ok := instances[instance]; ok {
		chk.Panic("plugin instance %d exists already", instance)
	}
	name := m.Plugins[instance].Name
	fcn, ok := allocators[name]
	if !ok {
		chk.Panic("cannot get allocator for plugin %q", name)
	}
	inst, err := fcn(m, d, instance)
	if err != nil {
		return
	}
	instances[instance] = inst
	return
}

// GetInstance returns a living plugin instance
func GetInstance(instance int) Instance {
	inst, ok := instances[instance]
	if !ok {
		chk.Panic("plugin instance %d is not available", instance)
	}
	return inst
}

// FreeInstance releases a plugin instance and removes it from the registry.
// Freeing an absent instance is a no-op.
func FreeInstance(instance int) {
	if inst, ok := instances[instance]; ok {
		inst.Free()
		delete(instances, instance)
	}
}

// ComputePassive invokes, in instance order, the Compute of all living
// instances whose plugin declares the passive-force capability. The host calls
// this once per step, after updating positions and edge lengths and before
// integration.
func ComputePassive(m *inp.Model, d *State) {
	for i, pdat := range m.Plugins {
		inst, ok := instances[i]
		if !ok {
			continue // construction failed; instance inactive
		}
		if plugins[pdat.Name].Passive {
			inst.Compute(m, d)
		}
	}
}

// plugins holds the metadata of all registered plugin types
var plugins = make(map[string]Info)

// allocators holds all plugin instance allocators
var allocators = make(map[string]AllocatorType)

// instances holds all living plugin instances; instance id => instance
var instances = make(map[int]Instance)
