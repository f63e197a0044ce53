// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selfptr implements force_thin_self_ptr (spec §4.F): reducing a
// CFI shim's receiver type down to the raw pointer or reference that
// actually carries the receiver's address, by peeling away single-field
// wrapper structs (Pin<&Self>, repr(transparent) newtypes, ...) one layer
// at a time.
//
// internal/abi deliberately carries no layout information (it is a pure
// mangling-oriented type tree), so this package takes layout as an
// explicit collaborator: callers (internal/gotypes, in this repo) resolve
// a type's Layout however their host represents memory layout.
package selfptr

import "google.golang.org/typeidgen/internal/abi"

// Field is one direct field of an aggregate receiver type, in the shape
// force_thin_self_ptr's peeling loop needs it.
type Field struct {
	// Type is the field's own type.
	Type abi.Type

	// OneByteZST reports whether the field is a zero-sized type with
	// alignment 1 — the kind force_thin_self_ptr ignores when hunting for
	// the receiver's one "real" field (spec §4.F step 3).
	OneByteZST bool
}

// Layout is the minimal layout information ForceThinSelfPtr needs about one
// type: whether it is sized, and its direct fields (empty for anything that
// isn't a single-field-peelable aggregate, including the raw
// pointer/reference case the loop terminates on).
type Layout struct {
	Sized  bool
	Fields []Field
}

// LayoutOf resolves ty's Layout under a fully-revealing parameter
// environment (spec §4.F step 1). The real compiler computes this from
// actual memory layout; ForceThinSelfPtr only consumes the result.
type LayoutOf func(ty abi.Type) Layout

// ForceThinSelfPtr reduces ty to the raw pointer or reference it wraps, by
// repeatedly replacing the current type with its unique non-1-ZST field
// until a raw pointer or reference is reached (spec §4.F "force_thin_self_ptr").
//
// The two failure modes here — an unsized receiver, or a layer with no
// unique non-1-ZST field to peel — indicate an invalid CFI shim receiver
// shape, a bug upstream of this function, not a recoverable condition
// (spec §4.F, §7). The original is a debug assertion; Go has no separate
// debug-gated assertion facility, so this always panics via abi.Unreachable,
// matching the unconditional BUG-panic discipline the rest of this module
// uses for the same class of invariant violation.
func ForceThinSelfPtr(ty abi.Type, layoutOf LayoutOf) abi.Type {
	layout := layoutOf(ty)
	if !layout.Sized {
		abi.Unreachable("selfptr.ForceThinSelfPtr: receiver %#v is unsized; dyn Trait -> *const dyn Trait coercion must already have happened upstream in the v-table shim", ty)
	}

	cur := ty
	curLayout := layout
	for !isPointerLike(cur) {
		idx, ok := uniqueNonZSTField(curLayout.Fields)
		if !ok {
			abi.Unreachable("selfptr.ForceThinSelfPtr: receiver %#v does not have a unique non-1-ZST field to peel", cur)
		}
		cur = curLayout.Fields[idx].Type
		curLayout = layoutOf(cur)
	}
	return cur
}

func isPointerLike(ty abi.Type) bool {
	switch ty.(type) {
	case abi.RawPtr, abi.Ref:
		return true
	default:
		return false
	}
}

// uniqueNonZSTField returns the index of fields' sole non-1-ZST entry. ok is
// false when there isn't exactly one such field.
func uniqueNonZSTField(fields []Field) (idx int, ok bool) {
	idx = -1
	count := 0
	for i, f := range fields {
		if f.OneByteZST {
			continue
		}
		count++
		idx = i
	}
	return idx, count == 1
}
