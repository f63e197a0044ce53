// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encode implements the recursive Itanium-with-vendor-extensions
// type walker (spec §4.D): the single largest component of this repository.
// Every exported entry point takes an already-fresh *dict.Dictionary (spec
// §4.B, §9: one dictionary per top-level call, threaded by a single mutable
// borrow through the recursion, never cached across calls).
//
// Every type position a caller hands to Type is expected to have already
// passed through transform.Transform once for this top-level call (spec
// §4.C: the transformer runs once per top-level position, not re-entered by
// the encoder) — except the inner return/parameter types of a nested
// FnPtr's own signature, which this package transforms and encodes afresh
// with an empty Options value, exactly as the top-level driver does for the
// outermost signature. opts is still threaded through Type itself because
// GENERALIZE_REPR_C never rewrites the type tree (transform.Transform
// leaves Adt shapes alone); it only changes how this package stringifies an
// Adt, so the encoder must keep consulting it directly.
package encode

import (
	"strconv"
	"strings"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/transform"
)

// compress wraps d.Compress with the Itanium built-in-token exception (spec
// §6, §8 "Built-in non-compression"): a buffer that is itself one of the
// reserved built-in tokens is never inserted into the dictionary, because
// the Itanium ABI forbids compressing built-in types. Every other buffer —
// including vendor-extension-wrapped primitives like `u3i32` — is an
// ordinary dictionary slot, which is why a bare `i32` return type already
// allocates slot 0 for a later identical argument to back-reference.
func compress(d *dict.Dictionary, key dict.Key, buf string) string {
	if abi.BuiltinItaniumTokens[buf] {
		return buf
	}
	return d.Compress(key, buf)
}

// Type renders ty (already transformed for this top-level position) per
// spec §4.D's grammar table, threading dict through every compressible
// subtree. opts is consulted directly only for GENERALIZE_REPR_C (see
// package doc); self carries the Self-erasure sentinel context down into
// any nested FnPtr signature, which re-derives its own opts from scratch.
func Type(ty abi.Type, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	switch t := ty.(type) {
	case abi.Bool:
		return "b"
	case abi.Char:
		return compress(d, dict.TypeKey("u4char", dict.QualNone), "u4char")
	case abi.Str:
		return compress(d, dict.TypeKey("u3str", dict.QualNone), "u3str")
	case abi.Never:
		return compress(d, dict.TypeKey("u5never", dict.QualNone), "u5never")
	case abi.Unit:
		return "v"
	case abi.Int:
		buf := vendorInt(t.Width)
		return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
	case abi.Uint:
		buf := vendorUint(t.Width)
		return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
	case abi.Float:
		return floatToken(t.Width)
	case abi.Tuple:
		return encodeTuple(t, d, opts, self)
	case abi.Array:
		return encodeArray(t, d, opts, self)
	case abi.Slice:
		return encodeSlice(t, d, opts, self)
	case abi.Adt:
		return encodeAdt(t, d, opts, self)
	case abi.Foreign:
		return encodeForeign(t, d)
	case abi.Ref:
		return encodeRef(t, d, opts, self)
	case abi.RawPtr:
		return encodeRawPtr(t, d, opts, self)
	case abi.FnPtr:
		buf := "P" + FnSig(t.Sig, d, self)
		return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
	case abi.FnDef:
		return encodeFnDefOrClosure(t.Def, t.Args, d, opts, self)
	case abi.Closure:
		return encodeFnDefOrClosure(t.Def, t.Args, d, opts, self)
	case abi.CoroutineClosure:
		return encodeFnDefOrClosure(t.Def, t.Args[:t.ParentCount], d, opts, self)
	case abi.Coroutine:
		return encodeFnDefOrClosure(t.Def, t.Args[:t.ParentCount], d, opts, self)
	case abi.Dynamic:
		return encodeDynamic(t, d, opts, self)
	case abi.Param:
		return compress(d, dict.TypeKey("u5param", dict.QualNone), "u5param")
	case abi.SelfErased:
		// Mangles identically to Param (spec §3, abi.SelfErased doc); sharing
		// the literal text means it naturally shares the dictionary slot too.
		return compress(d, dict.TypeKey("u5param", dict.QualNone), "u5param")
	default:
		abi.Unreachable("encode.Type: unexpected type %T", ty)
		return ""
	}
}

func vendorInt(w abi.IntWidth) string {
	switch w {
	case abi.I8:
		return "u2i8"
	case abi.I16:
		return "u3i16"
	case abi.I32:
		return "u3i32"
	case abi.I64:
		return "u3i64"
	case abi.I128:
		return "u4i128"
	case abi.Isize:
		return "u5isize"
	default:
		abi.Unreachable("encode.vendorInt: unexpected width %d", w)
		return ""
	}
}

func vendorUint(w abi.UintWidth) string {
	switch w {
	case abi.U8:
		return "u2u8"
	case abi.U16:
		return "u3u16"
	case abi.U32:
		return "u3u32"
	case abi.U64:
		return "u3u64"
	case abi.U128:
		return "u4u128"
	case abi.Usize:
		return "u5usize"
	default:
		abi.Unreachable("encode.vendorUint: unexpected width %d", w)
		return ""
	}
}

func floatToken(w abi.FloatWidth) string {
	switch w {
	case abi.F16:
		return "Dh"
	case abi.F32:
		return "f"
	case abi.F64:
		return "d"
	case abi.F128:
		return "g"
	default:
		abi.Unreachable("encode.floatToken: unexpected width %d", w)
		return ""
	}
}

func encodeTuple(t abi.Tuple, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	var b strings.Builder
	b.WriteString("u5tupleI")
	for _, e := range t.Elems {
		b.WriteString(Type(e, d, opts, self))
	}
	b.WriteString("E")
	buf := b.String()
	return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
}

func encodeArray(t abi.Array, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	var length string
	if t.Len.Kind == abi.ConstValue && (t.Len.Value.Kind == abi.ValueUint || t.Len.Value.Kind == abi.ValueInt) {
		// Array lengths are never negative; render the plain decimal digits
		// the grammar table shows (`A<N><enc T>`), not the general `L...E`
		// const form.
		length = t.Len.Value.Bits.String()
	} else {
		// A still-generic length is unreachable in practice at this
		// monomorphization-time encoding stage, but stays total by falling
		// back to the general const encoding rather than panicking.
		length = encodeConst(t.Len, d, opts, self)
	}
	buf := "A" + length + Type(t.Elem, d, opts, self)
	return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
}

func encodeSlice(t abi.Slice, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	buf := "u5sliceI" + Type(t.Elem, d, opts, self) + "E"
	return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
}

func encodeRef(t abi.Ref, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	inner := "u3refI" + Type(t.Elem, d, opts, self) + "E"
	inner = compress(d, dict.TypeKey(inner, dict.QualNone), inner)
	if !t.Mutable {
		return inner
	}
	wrapped := "U3mut" + inner
	return compress(d, dict.TypeKey(wrapped, dict.QualMut), wrapped)
}

func encodeRawPtr(t abi.RawPtr, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	pointee := Type(t.Elem, d, opts, self)
	qual := dict.QualNone
	if !t.Mutable {
		qual = dict.QualConst
	}
	pointee = compress(d, dict.TypeKey(pointee, qual), pointee)

	prefix := "P"
	if !t.Mutable {
		prefix = "PK"
	}
	whole := prefix + pointee
	return compress(d, dict.TypeKey(whole, dict.QualNone), whole)
}

func encodeDynamic(t abi.Dynamic, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	tag := "u3dynI"
	if t.Kind == abi.DynStar {
		tag = "u7dynstarI"
	}
	var b strings.Builder
	b.WriteString(tag)
	b.WriteString(encodePredicates(t.Predicates, d, opts, self))
	b.WriteString(encodeRegion(t.Region, d))
	b.WriteString("E")
	buf := b.String()
	return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
}

func encodeForeign(t abi.Foreign, d *dict.Dictionary) string {
	if enc, ok := cfiEncodingOverride(t.Def); ok {
		return compress(d, dict.TypeKey(enc, dict.QualNone), enc)
	}
	buf := unscopedNameToken(t.Def)
	return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
}

func encodeAdt(t abi.Adt, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	if enc, ok := cfiEncodingOverride(t.Def); ok {
		return compress(d, dict.TypeKey(enc, dict.QualNone), enc)
	}
	if opts.Has(transform.GeneralizeReprC) && t.Def.ReprC {
		buf := unscopedNameToken(t.Def)
		return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
	}
	return encodeFnDefOrClosure(t.Def, t.Args, d, opts, self)
}

// unscopedNameToken renders the `<len><unscoped_name>` token shared by
// repr(C) ADTs (under GENERALIZE_REPR_C) and the default Foreign encoding.
func unscopedNameToken(def *abi.Def) string {
	name := def.ItemName
	if name == "" {
		abi.Unreachable("encode.unscopedNameToken: empty item name for %v", def.Path)
	}
	return strconv.Itoa(len(name)) + name
}

// cfiEncodingOverride reports the attribute's verbatim string, handling the
// empty-attribute diagnostic fallthrough (spec §7 category 1): an empty
// string means "no usable override", so the caller falls through to its
// default encoding instead of emitting nothing.
func cfiEncodingOverride(def *abi.Def) (string, bool) {
	if def.CfiEncoding == nil {
		return "", false
	}
	if *def.CfiEncoding == "" {
		return "", false
	}
	return *def.CfiEncoding, true
}

func encodeFnDefOrClosure(def *abi.Def, args abi.GenericArgs, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	name := tyName(def)
	argsStr := encodeArgs(args, d, opts, self)
	buf := "u" + strconv.Itoa(len(name)) + name + argsStr
	return compress(d, dict.TypeKey(buf, dict.QualNone), buf)
}
