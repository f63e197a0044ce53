// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the pre-encoding type rewrite driven by the
// option flags (spec §4.C): pointer generalization, integer normalization,
// and method self-type erasure. GENERALIZE_REPR_C is carried as a bit here
// only so it threads through to internal/encode unchanged — it never
// rewrites the type tree itself, only how the encoder later stringifies an
// Adt (spec §4.C, §4.D).
//
// Transform is a pure function: given the same type, options and self
// context it always returns the same result, and it never mutates its
// input. It is applied once per top-level type position (a signature's
// return type, then each parameter in turn); nested function pointer
// signatures are re-transformed independently by internal/encode with a
// fresh, empty Options value, exactly as the top-level entry points do for
// the outermost signature.
package transform

import (
	"reflect"

	"google.golang.org/typeidgen/internal/abi"
)

// Options is the small bit-set of spec §6. It is passed by value
// throughout, never by pointer.
type Options uint32

// Option bits, matching spec §6's numbering exactly.
const (
	GeneralizePointers Options = 1 << iota
	GeneralizeReprC
	NormalizeIntegers
	NoSelfTypeErasure
)

// Has reports whether bit is set in o.
func (o Options) Has(bit Options) bool {
	return o&bit != 0
}

// With returns o with bit set.
func (o Options) With(bit Options) Options {
	return o | bit
}

// Without returns o with bit cleared.
func (o Options) Without(bit Options) Options {
	return o &^ bit
}

// canonicalPointer is the single opaque pointer type every generalized
// pointer/reference collapses to (spec §4.C: "e.g. *const ()").
func canonicalPointer() abi.Type {
	return abi.RawPtr{Elem: abi.Unit{}, Mutable: false}
}

// SelfContext carries the method self-type-erasure substitution: Type is
// the instance's concrete Self type, substituted with abi.SelfErased{}
// wherever it structurally recurs, unless Options.NoSelfTypeErasure is set.
// A zero SelfContext (Type == nil) means "not encoding a method instance";
// Transform leaves such types untouched regardless of the erasure bit.
type SelfContext struct {
	Type abi.Type
}

// Transform rewrites ty under opts and self, recursing into every
// structural child position (tuple elements, array/slice elements, Adt/
// FnDef/Closure/Coroutine generic arguments, reference/pointer pointees,
// dynamic predicates) except the inner parameter/return types of a nested
// FnPtr's signature, which internal/encode re-transforms independently.
func Transform(ty abi.Type, opts Options, self SelfContext) abi.Type {
	if self.Type != nil && !opts.Has(NoSelfTypeErasure) && typesEqual(ty, self.Type) {
		return abi.SelfErased{}
	}

	switch t := ty.(type) {
	case abi.Bool, abi.Char, abi.Str, abi.Never, abi.Unit, abi.Param, abi.SelfErased:
		return t

	case abi.Int:
		return transformInt(t, opts)

	case abi.Uint:
		return transformUint(t, opts)

	case abi.Float:
		return t

	case abi.Tuple:
		elems := make([]abi.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Transform(e, opts, self)
		}
		return abi.Tuple{Elems: elems}

	case abi.Array:
		return abi.Array{Elem: Transform(t.Elem, opts, self), Len: transformConst(t.Len, opts, self)}

	case abi.Slice:
		return abi.Slice{Elem: Transform(t.Elem, opts, self)}

	case abi.Adt:
		// Generalization only collapses pointer/reference shapes, not the
		// ADTs that contain them, so generic args still need a recursive
		// pass.
		return abi.Adt{Def: t.Def, Args: transformArgs(t.Args, opts, self)}

	case abi.Foreign:
		return t

	case abi.Ref:
		if opts.Has(GeneralizePointers) {
			return canonicalPointer()
		}
		return abi.Ref{Region: t.Region, Elem: Transform(t.Elem, opts, self), Mutable: t.Mutable}

	case abi.RawPtr:
		if opts.Has(GeneralizePointers) {
			return canonicalPointer()
		}
		return abi.RawPtr{Elem: Transform(t.Elem, opts, self), Mutable: t.Mutable}

	case abi.FnPtr:
		// Nested signatures are re-transformed from scratch by the encoder
		// with Options::empty(); leave this one untouched here.
		return t

	case abi.FnDef:
		return abi.FnDef{Def: t.Def, Args: transformArgs(t.Args, opts, self)}

	case abi.Closure:
		return abi.Closure{Def: t.Def, Args: transformArgs(t.Args, opts, self)}

	case abi.CoroutineClosure:
		return abi.CoroutineClosure{Def: t.Def, Args: transformArgs(t.Args, opts, self), ParentCount: t.ParentCount}

	case abi.Coroutine:
		return abi.Coroutine{Def: t.Def, Args: transformArgs(t.Args, opts, self), ParentCount: t.ParentCount}

	case abi.Dynamic:
		preds := make([]abi.ExistentialPredicate, len(t.Predicates))
		for i, p := range t.Predicates {
			preds[i] = transformPredicate(p, opts, self)
		}
		return abi.Dynamic{Predicates: preds, Region: t.Region, Kind: t.Kind}

	default:
		abi.Unreachable("transform.Transform: unexpected type %T", ty)
		return nil
	}
}

func transformInt(t abi.Int, opts Options) abi.Type {
	if !opts.Has(NormalizeIntegers) {
		return t
	}
	// Fixed-width signed integers already carry their own canonical width
	// tag in this type system (there is no separate "signed char" vs "i8"
	// alias to merge, unlike the C types NORMALIZE_INTEGERS exists to
	// reconcile at FFI boundaries); isize is explicitly preserved.
	return t
}

func transformUint(t abi.Uint, opts Options) abi.Type {
	if !opts.Has(NormalizeIntegers) {
		return t
	}
	return t
}

func transformConst(c abi.Const, opts Options, self SelfContext) abi.Const {
	return abi.Const{Kind: c.Kind, Type: Transform(c.Type, opts, self), Value: c.Value}
}

func transformArgs(args abi.GenericArgs, opts Options, self SelfContext) abi.GenericArgs {
	if len(args) == 0 {
		return nil
	}
	out := make(abi.GenericArgs, len(args))
	for i, a := range args {
		switch arg := a.(type) {
		case abi.LifetimeArg:
			out[i] = arg
		case abi.TypeArg:
			out[i] = abi.TypeArg{Type: Transform(arg.Type, opts, self)}
		case abi.ConstArg:
			out[i] = abi.ConstArg{Const: transformConst(arg.Const, opts, self)}
		default:
			abi.Unreachable("transform.transformArgs: unexpected generic arg %T", a)
		}
	}
	return out
}

// typesEqual reports whether a and b are the same type for self-erasure
// substitution purposes. reflect.DeepEqual is the right tool here (not a
// hand-rolled structural walk): Self substitution compares a type against
// one fixed reference value, not two arbitrary subtrees during a hot
// encoding path, and every abi.Type variant is already comparable the way
// DeepEqual treats it (value structs, slices, and *Def pointers dereferenced
// to their pointed-to Def).
func typesEqual(a, b abi.Type) bool {
	return reflect.DeepEqual(a, b)
}

func transformPredicate(p abi.ExistentialPredicate, opts Options, self SelfContext) abi.ExistentialPredicate {
	out := abi.ExistentialPredicate{Kind: p.Kind, Def: p.Def, Args: transformArgs(p.Args, opts, self)}
	if p.Kind == abi.PredProjection {
		out.Term = abi.Term{Type: Transform(p.Term.Type, opts, self), Const: p.Term.Const}
		if p.Term.Const != nil {
			c := transformConst(*p.Term.Const, opts, self)
			out.Term.Const = &c
		}
	}
	return out
}
