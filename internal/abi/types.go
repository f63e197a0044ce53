// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abi defines the monomorphic type tree, generic argument lists,
// regions, constants, and function ABI shapes the encoder operates on (see
// spec §3). It is a pure data model: nothing here knows how to render or
// transform a type, only how to represent one. Variants the encoder must
// treat as unreachable after monomorphization (Alias, Bound, Error,
// CoroutineWitness, Infer, Placeholder) are deliberately absent from this
// tree; a host adapter that would need to represent one of those has a bug.
package abi

// Type is the monomorphic type tree. It is implemented by exactly the
// concrete types declared in this file; an exhaustive type switch over Type
// values is how every consumer (transformer, encoder) dispatches on kind,
// per the "exhaustive matching beats virtual dispatch" guidance for this
// kind of wide tagged union.
type Type interface {
	isType()
}

// Bool is Rust's bool.
type Bool struct{}

// Char is Rust's char (a 32-bit Unicode scalar value).
type Char struct{}

// Str is Rust's str (the unsized slice-of-utf8 type).
type Str struct{}

// Never is Rust's ! (the uninhabited bottom type).
type Never struct{}

// IntWidth enumerates signed integer widths.
type IntWidth int

// Signed integer widths, in the order they appear in spec §4.D's table.
const (
	I8 IntWidth = iota
	I16
	I32
	I64
	I128
	Isize
)

// Int is a fixed-width (or pointer-width) signed integer type.
type Int struct {
	Width IntWidth
}

// UintWidth enumerates unsigned integer widths.
type UintWidth int

// Unsigned integer widths, symmetric with IntWidth.
const (
	U8 UintWidth = iota
	U16
	U32
	U64
	U128
	Usize
)

// Uint is a fixed-width (or pointer-width) unsigned integer type.
type Uint struct {
	Width UintWidth
}

// FloatWidth enumerates IEEE-754 floating point widths.
type FloatWidth int

// Floating point widths.
const (
	F16 FloatWidth = iota
	F32
	F64
	F128
)

// Float is an IEEE-754 floating point type.
type Float struct {
	Width FloatWidth
}

// Unit is Rust's () (the zero-element tuple), encoded as C's void return.
type Unit struct{}

// Tuple is a (possibly empty, but Unit is used for the truly empty case)
// fixed-arity product type.
type Tuple struct {
	Elems []Type
}

// Array is a fixed-length homogeneous sequence [T; N].
type Array struct {
	Elem Type
	Len  Const
}

// Slice is an unsized homogeneous sequence [T].
type Slice struct {
	Elem Type
}

// Adt is a user-defined struct/enum/union, identified by Def and
// instantiated with Args.
type Adt struct {
	Def  *Def
	Args GenericArgs
}

// Foreign is an `extern "C" { type T; }` opaque foreign type.
type Foreign struct {
	Def *Def
}

// Ref is a Rust reference &T or &mut T.
type Ref struct {
	Region  Region
	Elem    Type
	Mutable bool
}

// RawPtr is a raw pointer *const T or *mut T.
type RawPtr struct {
	Elem    Type
	Mutable bool
}

// FnPtr is a bare function pointer type fn(...) -> ...
type FnPtr struct {
	Sig *FnSig
}

// FnDef is the zero-sized type of a specific named function item.
type FnDef struct {
	Def  *Def
	Args GenericArgs
}

// Closure is the type of a specific closure expression.
type Closure struct {
	Def  *Def
	Args GenericArgs
}

// CoroutineClosure is the type of a specific `async`/coroutine-producing
// closure expression. Only the leading ParentCount generic args (the
// enclosing generic scope's own args) participate in mangling; the
// remaining args describe coroutine-internal upvar/witness types that do
// not affect the identifier.
type CoroutineClosure struct {
	Def         *Def
	Args        GenericArgs
	ParentCount int
}

// Coroutine is the type of a specific coroutine (the desugared state
// machine of an `async fn` or generator). Like CoroutineClosure, only the
// parent args are encoded.
type Coroutine struct {
	Def         *Def
	Args        GenericArgs
	ParentCount int
}

// DynKind distinguishes `dyn Trait` from `dyn* Trait`.
type DynKind int

const (
	// Dyn is an ordinary trait object, behind its own pointer.
	Dyn DynKind = iota
	// DynStar is a `dyn*` trait object, a pointer-sized inline trait object.
	DynStar
)

// Dynamic is a trait object type `dyn Trait + ... + 'region` (or `dyn*`).
type Dynamic struct {
	Predicates []ExistentialPredicate
	Region     Region
	Kind       DynKind
}

// Param is an unresolved generic type parameter. After monomorphization
// these only appear when erased deliberately (see self-type erasure and
// the SelfErased sentinel), never as an un-substituted source-level
// parameter.
type Param struct {
	Name string
}

// SelfErased is the opaque sentinel type substituted for a method's Self
// generic argument when self-type erasure is active (see
// internal/transform and spec §4.C "NO_SELF_TYPE_ERASURE"). It mangles
// identically to Param ("u5param"), which is precisely the point: every
// impl of a trait method shares one identifier regardless of concrete Self.
type SelfErased struct{}

func (Bool) isType()             {}
func (Char) isType()             {}
func (Str) isType()              {}
func (Never) isType()            {}
func (Int) isType()              {}
func (Uint) isType()             {}
func (Float) isType()            {}
func (Unit) isType()             {}
func (Tuple) isType()            {}
func (Array) isType()            {}
func (Slice) isType()            {}
func (Adt) isType()              {}
func (Foreign) isType()          {}
func (Ref) isType()              {}
func (RawPtr) isType()           {}
func (FnPtr) isType()            {}
func (FnDef) isType()            {}
func (Closure) isType()          {}
func (CoroutineClosure) isType() {}
func (Coroutine) isType()        {}
func (Dynamic) isType()          {}
func (Param) isType()            {}
func (SelfErased) isType()       {}
