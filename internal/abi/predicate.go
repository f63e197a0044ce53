// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

// PredicateKind discriminates the three existential predicate variants a
// `dyn Trait` type's predicate list may contain.
type PredicateKind int

const (
	// PredTrait is a `dyn Trait<Args>` base trait bound.
	PredTrait PredicateKind = iota
	// PredProjection is a `dyn Trait<Assoc = T>` associated-item binding.
	PredProjection
	// PredAutoTrait is an auxiliary auto trait bound (`+ Send`, `+ Sync`).
	PredAutoTrait
)

// Term is the right-hand side of a Projection predicate: exactly one of
// Type or Const is set.
type Term struct {
	Type  Type
	Const *Const
}

// ExistentialPredicate is one bound of a `dyn Trait + ... ` type.
type ExistentialPredicate struct {
	Kind PredicateKind
	Def  *Def
	Args GenericArgs
	// Term is populated only when Kind is PredProjection.
	Term Term
}
