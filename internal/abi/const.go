// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

import "math/big"

// ConstKind discriminates the two reachable const kinds of spec §3. Any
// other kind (the host's evaluation-error / unevaluated variants) is
// unreachable after monomorphization.
type ConstKind int

const (
	// ConstParam is an unresolved const generic parameter (reachable only
	// as part of a signature still carrying its own generics, e.g. a
	// `[T; N]` array type's N before full monomorphization of a caller's
	// own parameters — spec §3 allows Param consts as-is).
	ConstParam ConstKind = iota
	// ConstValue is a concrete, evaluated constant value.
	ConstValue
)

// ValueKind discriminates the scalar kinds a ConstValue's Value may hold.
// encode_const only ever needs to render one of these (spec §3: "Only
// integer, unsigned-integer, boolean, and char const values are supported
// as arguments").
type ValueKind int

const (
	// ValueInt holds a signed integer as its raw bit pattern in Bits; the
	// encoder sign-extends it to its mathematical value (see Value and
	// internal/encode's encodeConst).
	ValueInt ValueKind = iota
	// ValueUint holds an unsigned integer magnitude.
	ValueUint
	// ValueBool holds a boolean (false = 0, true = 1).
	ValueBool
	// ValueChar holds a Unicode scalar value (rendered as its unsigned
	// decimal code point — char constants are not in the original source's
	// match arms, but spec §3 lists char as supported).
	ValueChar
)

// Value is the payload of a ConstValue-kind Const. Bits carries the value's
// raw unsigned bit pattern at its type's declared width (spec's
// `eval_bits`); the encoder is responsible for sign-extending it per width
// when Kind is ValueInt, exactly as `Integer::size().sign_extend(bits)`
// does in the host compiler. This keeps the adapter from needing to know
// the sign-extension rule itself.
type Value struct {
	Kind ValueKind
	Bits *big.Int
	Bool bool
}

// Const is a constant generic argument or array length.
type Const struct {
	Kind ConstKind
	Type Type
	// Value is populated only when Kind is ConstValue.
	Value Value
}
