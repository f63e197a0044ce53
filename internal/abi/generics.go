// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

// GenericArg is one entry of an ordered generic argument list: a lifetime,
// a type, or a const.
type GenericArg interface {
	isGenericArg()
}

// LifetimeArg is a region used as a generic argument.
type LifetimeArg struct {
	Region Region
}

// TypeArg is a type used as a generic argument.
type TypeArg struct {
	Type Type
}

// ConstArg is a const used as a generic argument.
type ConstArg struct {
	Const Const
}

func (LifetimeArg) isGenericArg() {}
func (TypeArg) isGenericArg()     {}
func (ConstArg) isGenericArg()    {}

// GenericArgs is an ordered generic argument list.
type GenericArgs []GenericArg
