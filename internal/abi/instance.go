// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

// Instance is a concrete method instance: a specific trait-method
// definition dispatched against a specific, already-resolved Self type.
// Computing the FnAbi for an instance (call-lowering, layout) is the
// external collaborator's job (spec §1); Instance carries the already
// -computed result plus the Self type identity needed for self-type
// erasure (spec §4.C, §4.E).
type Instance struct {
	Def      *Def
	FnAbi    FnAbi
	SelfType Type
}
