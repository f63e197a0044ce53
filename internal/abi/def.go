// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

// PathTag is the def-path component tag emitted by the ty_name path walk
// (spec §4.D "ty_name(def_id)", step 1). The letters here are the vendor
// tag letters, not the struct field names: {I, F, t, v, C, c, k, i} for
// (impl, foreign mod, type-ns, value-ns, closure, ctor, anon-const,
// opaque-ty) respectively.
type PathTag int

// Path component tags, in the order spec §4.D lists their tag letters.
const (
	TagImpl PathTag = iota
	TagForeignMod
	TagTypeNS
	TagValueNS
	TagClosure
	TagCtor
	TagAnonConst
	TagOpaqueTy
)

// letter returns the single tag letter for t, used by the namespace-tag
// walk of ty_name (through PathComponent.Letter).
func (t PathTag) letter() string {
	switch t {
	case TagImpl:
		return "I"
	case TagForeignMod:
		return "F"
	case TagTypeNS:
		return "t"
	case TagValueNS:
		return "v"
	case TagClosure:
		return "C"
	case TagCtor:
		return "c"
	case TagAnonConst:
		return "k"
	case TagOpaqueTy:
		return "i"
	default:
		Unreachable("PathTag.letter: unexpected path tag %d", t)
		return ""
	}
}

// Letter exposes the tag letter for a path component's namespace tag; see
// PathTag.letter.
func (c PathComponent) Letter() string {
	return c.Tag.letter()
}

// PathComponent is one disambiguated segment of a def-path, root-first.
// Disambiguator is the compiler's per-scope disambiguator count (0 means
// "no disambiguator needed"); Name is the component's textual name, used
// only by the second (human-readable) path walk.
type PathComponent struct {
	Tag           PathTag
	Disambiguator uint64
	Name          string
}

// Def identifies a specific item (ADT, function, closure, trait, foreign
// type, ...) the way the host compiler's DefId does: a crate identity plus
// a def-path within that crate, along with the attributes that affect
// mangling (`#[cfi_encoding = "..."]`, `repr(C)`).
type Def struct {
	// Path is the def-path, root-first, used for both the namespace-tag walk
	// and the disambiguator/name walk in ty_name.
	Path []PathComponent

	// StableCrateID is a per-build-stable hash of the defining crate's
	// identity, used as the ty_name crate disambiguator.
	StableCrateID uint64

	// CrateName is the defining crate's name.
	CrateName string

	// ItemName is the item's own unscoped name (the last path component's
	// Name), used by the repr(C)/Foreign unscoped-name encodings.
	ItemName string

	// CfiEncoding, if non-nil, is the user-supplied `#[cfi_encoding = "..."]`
	// attribute value, already trimmed of surrounding white space (an empty trimmed
	// value is the diagnostic case in spec §7 category 1 and is represented
	// here as a non-nil pointer to the empty string, not as nil).
	CfiEncoding *string

	// ReprC reports whether the item carries `#[repr(C)]` (only meaningful
	// for Adt).
	ReprC bool
}
