// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

// RegionKind discriminates the region variants of spec §3. Bound, Erased
// and EarlyParam are reachable after monomorphization; the remaining
// variants are listed only so encode_region can name the offending kind in
// its unreachable panic, mirroring the exhaustive match in the Rust source.
type RegionKind int

const (
	// RegionBound is a de Bruijn-indexed bound region (e.g. a HRTB
	// `for<'a>` lifetime in a function pointer type).
	RegionBound RegionKind = iota
	// RegionErased is a lifetime erased by the host's borrow checker.
	RegionErased
	// RegionEarlyParam is an early-bound generic lifetime parameter.
	RegionEarlyParam
	// RegionLateParam is unreachable after monomorphization.
	RegionLateParam
	// RegionStatic is unreachable after monomorphization (spec models
	// 'static as already erased to RegionErased by the host).
	RegionStatic
	// RegionError is unreachable after monomorphization.
	RegionError
	// RegionVar is unreachable after monomorphization.
	RegionVar
	// RegionPlaceholder is unreachable after monomorphization.
	RegionPlaceholder
)

// Region is a lifetime. Debruijn/Var are only meaningful when Kind is
// RegionBound.
type Region struct {
	Kind     RegionKind
	Debruijn uint64
	Var      uint64
}
