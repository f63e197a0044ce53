// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typeid implements the two driver entry points of spec §4.E:
// ForFnAbi produces the full CFI type metadata identifier for a function
// ABI, and ForInstance does the same for a method instance after resolving
// its self-type-erasure context. KCFIForFnAbi/KCFIForInstance derive the
// low-32-bit KCFI hash from the corresponding textual identifier.
package typeid

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/encode"
	"google.golang.org/typeidgen/internal/transform"
)

const prefix = "_ZTSF"

// ForFnAbi produces the full textual CFI type identifier for fnAbi under
// opts (spec §4.E "typeid_for_fnabi"): a fresh dictionary, the return type,
// then every non-Ignore'd argument (the first FixedCount of them, skipping
// Ignore, when CVariadic), followed by the `.normalized`/`.generalized`
// option suffixes in that fixed order.
func ForFnAbi(fnAbi abi.FnAbi, opts transform.Options) string {
	opts = reprCForConv(opts, fnAbi.Conv)
	self := transform.SelfContext{}

	d := dict.New()
	retEnc := encode.Type(transform.Transform(fnAbi.Ret.Type, opts, self), d, opts, self)
	argEncs := encodedArgs(fnAbi, d, opts, self)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(encode.Body(retEnc, argEncs, fnAbi.CVariadic))
	b.WriteString(optionSuffix(opts))
	return b.String()
}

// ForInstance computes instance's FnAbi-level identifier, applying the
// self-type-erasure rule: instance.SelfType is always handed to the
// transformer as the erasure candidate, and whether it actually gets
// replaced by the opaque sentinel is entirely governed by whether opts
// carries NO_SELF_TYPE_ERASURE (spec §4.C, §4.E "typeid_for_instance").
func ForInstance(instance abi.Instance, opts transform.Options) string {
	opts = reprCForConv(opts, instance.FnAbi.Conv)
	self := transform.SelfContext{Type: instance.SelfType}

	d := dict.New()
	retEnc := encode.Type(transform.Transform(instance.FnAbi.Ret.Type, opts, self), d, opts, self)
	argEncs := encodedArgs(instance.FnAbi, d, opts, self)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(encode.Body(retEnc, argEncs, instance.FnAbi.CVariadic))
	b.WriteString(optionSuffix(opts))
	return b.String()
}

// KCFIForFnAbi is the low 32 bits of the xxHash64 of ForFnAbi's UTF-8
// bytes, as a bit-cast truncation (spec §4.E "kcfi_typeid_for_*").
func KCFIForFnAbi(fnAbi abi.FnAbi, opts transform.Options) uint32 {
	return kcfi(ForFnAbi(fnAbi, opts))
}

// KCFIForInstance is ForInstance's KCFI hash, symmetric with KCFIForFnAbi.
func KCFIForInstance(instance abi.Instance, opts transform.Options) uint32 {
	return kcfi(ForInstance(instance, opts))
}

func kcfi(identifier string) uint32 {
	return uint32(xxhash.Sum64String(identifier))
}

// reprCForConv overrides GENERALIZE_REPR_C based on the signature's own
// calling convention (spec invariant 4): a C-ABI signature always forces
// the bit on for its own duration, overriding whatever the caller passed.
func reprCForConv(opts transform.Options, conv abi.CallConv) transform.Options {
	if conv == abi.ConvC {
		return opts.With(transform.GeneralizeReprC)
	}
	return opts.Without(transform.GeneralizeReprC)
}

// encodedArgs transforms and encodes fnAbi's arguments per spec §4.E step
// 5: every PassIgnore argument contributes nothing, and a CVariadic
// signature only encodes its first FixedCount arguments (Ignore'd ones
// among them still skipped) before the caller appends the `z` marker.
func encodedArgs(fnAbi abi.FnAbi, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) []string {
	args := fnAbi.Args
	if fnAbi.CVariadic && fnAbi.FixedCount < len(args) {
		args = args[:fnAbi.FixedCount]
	}
	var encs []string
	for _, a := range args {
		if a.Mode == abi.PassIgnore {
			continue
		}
		encs = append(encs, encode.Type(transform.Transform(a.Type, opts, self), d, opts, self))
	}
	return encs
}

// optionSuffix appends `.normalized` then `.generalized`, in that fixed
// order, exactly when the corresponding option bit is set (spec §4.E step
// 7, §8 "Option monotonicity").
func optionSuffix(opts transform.Options) string {
	var b strings.Builder
	if opts.Has(transform.NormalizeIntegers) {
		b.WriteString(".normalized")
	}
	if opts.Has(transform.GeneralizePointers) {
		b.WriteString(".generalized")
	}
	return b.String()
}
