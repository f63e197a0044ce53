// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"strings"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/transform"
)

// FnSig renders a nested function signature per spec §4.D "encode_fnsig",
// always starting from an empty Options value: `FnPtr(sig) | P + <encoded
// FnSig with Options::empty()>` means a bare function pointer's own
// parameter/return types are re-transformed from scratch, independent of
// whatever options governed the enclosing signature. GENERALIZE_REPR_C is
// then re-derived from this inner signature's own calling convention, not
// inherited. self still carries through unchanged: a Self type erased in
// the outer signature is erased here too, if it recurs.
func FnSig(sig *abi.FnSig, d *dict.Dictionary, self transform.SelfContext) string {
	opts := transform.Options(0)
	if sig.ABI == abi.ConvC {
		opts = opts.With(transform.GeneralizeReprC)
	}

	ret := transform.Transform(sig.Output, opts, self)
	retEnc := Type(ret, d, opts, self)

	argEncs := make([]string, len(sig.Inputs))
	for i, in := range sig.Inputs {
		argEncs[i] = Type(transform.Transform(in, opts, self), d, opts, self)
	}

	return "F" + Body(retEnc, argEncs, sig.CVariadic)
}

// Body assembles the `<ret><args>[v|...z]E` tail shared by FnSig's `F...E`
// frame and the top-level `typeid_for_fnabi` driver's `_ZTSF...E` frame
// (spec §4.D "encode_fnsig", §4.E step 5): a non-variadic signature with no
// encoded arguments emits a bare `v`; a C-variadic signature always ends
// its parameter section with `z` regardless of how many fixed arguments
// came before it. The caller supplies its own leading marker (`F` or
// `_ZTSF`) since the two frames differ only in that prefix.
func Body(retEnc string, argEncs []string, variadic bool) string {
	var b strings.Builder
	b.WriteString(retEnc)
	if len(argEncs) == 0 && !variadic {
		b.WriteString("v")
	} else {
		for _, a := range argEncs {
			b.WriteString(a)
		}
	}
	if variadic {
		b.WriteString("z")
	}
	b.WriteString("E")
	return b.String()
}
