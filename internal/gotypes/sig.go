// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes

import (
	"go/ast"
	"go/types"

	"google.golang.org/typeidgen/internal/abi"
)

// FnSig converts a bare *types.Signature (a function *type*, as it appears
// nested inside another signature, e.g. a callback parameter) into an
// abi.FnSig. A bare function type carries no doc comment of its own in Go,
// so its ABI is always abi.ConvOther; only a named function or method
// declaration (see FnAbiFromFunc) can carry the "+typeidgen:conv=c"
// directive that forces abi.ConvC.
func (c *Converter) FnSig(sig *types.Signature) *abi.FnSig {
	return &abi.FnSig{
		Output:    c.resultType(sig),
		Inputs:    c.paramTypes(sig),
		CVariadic: false,
		ABI:       abi.ConvOther,
	}
}

// FnAbiFromFunc converts fn's signature into an abi.FnAbi, reading doc for
// this package's calling-convention and variadic directives
// ("+typeidgen:conv=c", "+typeidgen:variadic"). Go has no C-style `...`
// syntax distinct from its own variadic parameters, so CVariadic/FixedCount
// here are driven entirely by the doc-comment directive, not by sig's own
// shape; a function without "+typeidgen:variadic" always converts with
// CVariadic false, even if its last Go parameter is itself variadic.
func (c *Converter) FnAbiFromFunc(fn *types.Func, doc *ast.CommentGroup) abi.FnAbi {
	sig := fn.Type().(*types.Signature)
	directives := docDirectives(doc)

	conv := abi.ConvOther
	if _, ok := directives["conv"]; ok && directives["conv"] == "c" {
		conv = abi.ConvC
	}

	args := c.argAbis(sig)
	_, variadic := directives["variadic"]

	return abi.FnAbi{
		Conv:       conv,
		Args:       args,
		Ret:        c.argAbiFor(c.resultType(sig)),
		CVariadic:  variadic,
		FixedCount: len(args),
	}
}

// Instance converts a method fn declared on recv into an abi.Instance: recv
// is the method's receiver type (the Self type), already registered via
// RegisterDef if it carries repr(C)/cfi_encoding directives.
func (c *Converter) Instance(recv *types.Named, fn *types.Func, doc *ast.CommentGroup) abi.Instance {
	return abi.Instance{
		Def:      c.methodDef(recv, fn),
		FnAbi:    c.FnAbiFromFunc(fn, doc),
		SelfType: c.Type(recv),
	}
}

func (c *Converter) resultType(sig *types.Signature) abi.Type {
	results := sig.Results()
	switch results.Len() {
	case 0:
		return abi.Unit{}
	case 1:
		return c.Type(results.At(0).Type())
	default:
		elems := make([]abi.Type, results.Len())
		for i := 0; i < results.Len(); i++ {
			elems[i] = c.Type(results.At(i).Type())
		}
		return abi.Tuple{Elems: elems}
	}
}

func (c *Converter) paramTypes(sig *types.Signature) []abi.Type {
	params := sig.Params()
	out := make([]abi.Type, params.Len())
	for i := 0; i < params.Len(); i++ {
		out[i] = c.Type(params.At(i).Type())
	}
	return out
}

func (c *Converter) argAbis(sig *types.Signature) []abi.ArgAbi {
	params := sig.Params()
	out := make([]abi.ArgAbi, params.Len())
	for i := 0; i < params.Len(); i++ {
		out[i] = c.argAbiFor(c.Type(params.At(i).Type()))
	}
	return out
}

// argAbiFor derives a PassMode from the converted type alone: a
// zero-field-tuple (Go's struct{}, the only ZST this adapter can observe
// without a full layout query) is PassIgnore, everything else PassDirect.
// A host that needs PassIndirect/PassOther accuracy would consult its own
// layout query here instead; this adapter does not need that precision to
// drive the encoder, since the encoder itself only branches on
// PassIgnore-vs-not (spec §4.E step 5).
func (c *Converter) argAbiFor(ty abi.Type) abi.ArgAbi {
	if t, ok := ty.(abi.Tuple); ok && len(t.Elems) == 0 {
		return abi.ArgAbi{Type: ty, Mode: abi.PassIgnore}
	}
	return abi.ArgAbi{Type: ty, Mode: abi.PassDirect}
}
