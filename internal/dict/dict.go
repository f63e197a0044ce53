// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict implements the per-encoding substitution dictionary: the
// insertion-ordered map from a previously-seen subtree to its Itanium
// back-reference sequence ID. It is the compression trick the whole encoder
// exists to apply correctly; see internal/encode for the caller discipline
// that makes the ordering observable and deterministic.
package dict

import "google.golang.org/typeidgen/internal/numeral"

// Qualifier distinguishes dictionary slots that share a base type but mangle
// to different things: T, *const T and *mut T/&mut T occupy different slots
// despite sharing Canonical.
type Qualifier int

const (
	// QualNone is the default qualifier, used for bare types, regions,
	// consts and predicates.
	QualNone Qualifier = iota
	// QualConst marks the pointee of a *const pointer.
	QualConst
	// QualMut marks a mutable reference/pointer wrapper.
	QualMut
)

// Kind discriminates the four families of dictionary key.
type Kind int

const (
	// KindType keys a (type, qualifier) pair.
	KindType Kind = iota
	// KindRegion keys a region.
	KindRegion
	// KindConst keys a constant.
	KindConst
	// KindPredicate keys an existential predicate.
	KindPredicate
)

// Key is the compression cursor's lookup key. Two keys are equal exactly
// when they denote the same dictionary slot. Canonical is the subtree's
// fully expanded (pre-compression) text, which by the encoder's determinism
// invariant is byte-identical for structurally equal subtrees; this lets Key
// be an ordinary comparable struct without requiring the host type context
// to hand out interned pointers.
type Key struct {
	Kind      Kind
	Qualifier Qualifier
	Canonical string
}

// TypeKey builds a KindType key for the given canonical expansion and
// qualifier.
func TypeKey(canonical string, q Qualifier) Key {
	return Key{Kind: KindType, Qualifier: q, Canonical: canonical}
}

// RegionKey builds a KindRegion key.
func RegionKey(canonical string) Key {
	return Key{Kind: KindRegion, Canonical: canonical}
}

// ConstKey builds a KindConst key.
func ConstKey(canonical string) Key {
	return Key{Kind: KindConst, Canonical: canonical}
}

// PredicateKey builds a KindPredicate key.
func PredicateKey(canonical string) Key {
	return Key{Kind: KindPredicate, Canonical: canonical}
}

// Dictionary is the insert-ordered map from Key to insertion index. A fresh
// Dictionary is created per top-level encoding call and discarded afterward;
// it is never shared across calls (spec invariant: one dictionary per
// top-level encode).
type Dictionary struct {
	index map[Key]int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{index: make(map[Key]int)}
}

// Len returns the number of distinct keys inserted so far.
func (d *Dictionary) Len() int {
	return len(d.index)
}

// Compress implements the §4.B compress rule. If key has already been
// inserted, buf's contents are replaced entirely with the back-reference
// "S<seq-id>_". Otherwise key is inserted at the current size and buf is
// left untouched.
//
// Callers must build the full expansion of the subtree into buf before
// calling Compress, and must not mutate buf themselves; append the returned
// string to the parent buffer.
func (d *Dictionary) Compress(key Key, buf string) string {
	if idx, ok := d.index[key]; ok {
		return "S" + numeral.SeqID(uint64(idx)) + "_"
	}
	d.index[key] = len(d.index)
	return buf
}
