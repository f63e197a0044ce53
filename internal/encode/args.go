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

// encodeArgs renders a generic argument list per spec §4.D "encode_args":
// empty yields the empty string, non-empty is wrapped `I<enc arg>...E`. Not
// compressed itself — it is always a suffix of some other compressed
// subtree (an Adt, FnDef, Closure or predicate), never a dictionary key on
// its own.
func encodeArgs(args abi.GenericArgs, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("I")
	for _, a := range args {
		switch arg := a.(type) {
		case abi.LifetimeArg:
			b.WriteString(encodeRegion(arg.Region, d))
		case abi.TypeArg:
			b.WriteString(Type(arg.Type, d, opts, self))
		case abi.ConstArg:
			b.WriteString(encodeConst(arg.Const, d, opts, self))
		default:
			abi.Unreachable("encode.encodeArgs: unexpected generic arg %T", a)
		}
	}
	b.WriteString("E")
	return b.String()
}
