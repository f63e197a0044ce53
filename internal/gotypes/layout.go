// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes

import (
	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/selfptr"
)

// LayoutOf implements selfptr.LayoutOf over the types this Converter has
// produced: a struct Adt's fields come from the *types.Struct registered
// for its Def (see RegisterDef/plainDef); anything else (a raw
// pointer/reference, a basic type, an unregistered Adt) is reported as
// having no fields, which is exactly the shape ForceThinSelfPtr needs to
// terminate on a pointer/reference and to fail loudly on anything else it
// can't peel further.
//
// Unlike Rust, no Go value-level type is unsized, so Sized is always true
// here; this adapter has nothing analogous to reject a `dyn Trait` receiver
// that skipped its v-table-shim coercion.
func (c *Converter) LayoutOf(ty abi.Type) selfptr.Layout {
	adt, ok := ty.(abi.Adt)
	if !ok {
		return selfptr.Layout{Sized: true}
	}
	s, ok := c.structs[adt.Def]
	if !ok {
		return selfptr.Layout{Sized: true}
	}

	fields := make([]selfptr.Field, s.NumFields())
	for i := 0; i < s.NumFields(); i++ {
		ft := s.Field(i).Type()
		fields[i] = selfptr.Field{
			Type:       c.Type(ft),
			OneByteZST: c.sizes.Sizeof(ft) == 0 && c.sizes.Alignof(ft) == 1,
		}
	}
	return selfptr.Layout{Sized: true, Fields: fields}
}
