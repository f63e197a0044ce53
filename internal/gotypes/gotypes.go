// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gotypes is the host-collaborator substitution for this repo: the
// real tool this spec is modeled on reads types out of a Rust compiler's
// own middle-end (TyCtxt, layout queries, attribute tables). This package
// plays that role for Go source, using go/types and go/packages as the
// "middle-end" and a small doc-comment convention as the stand-in for
// Rust's `#[repr(C)]`/`#[cfi_encoding = "..."]` attributes.
//
// Converter is the only place *types.Type values are read; everything else
// in this module operates on internal/abi's host-independent type tree.
package gotypes

import (
	"go/ast"
	"go/types"
	"hash/fnv"
	"strings"

	"google.golang.org/typeidgen/internal/abi"
)

// Converter adapts go/types values for one load session into internal/abi
// values. It is stateful only in that it remembers the abi.Def it
// synthesized for each *types.Named, so that two references to the same Go
// type convert to the same Def pointer (internal/encode's ty_name and
// substitution-dictionary keys depend on this, see spec §4.B/§4.D).
type Converter struct {
	sizes types.Sizes

	defs    map[*types.Named]*abi.Def
	structs map[*abi.Def]*types.Struct
}

// New returns a Converter that sizes Go types the way sizes does (ordinarily
// types.SizesFor("gc", runtime.GOARCH)).
func New(sizes types.Sizes) *Converter {
	return &Converter{
		sizes:   sizes,
		defs:    make(map[*types.Named]*abi.Def),
		structs: make(map[*abi.Def]*types.Struct),
	}
}

// stableCrateID derives a per-build-stable crate identity from a Go package
// path, standing in for the host compiler's StableCrateId (spec §3 "Def").
func stableCrateID(pkgPath string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(pkgPath))
	return h.Sum64()
}

// docDirectives extracts this package's doc-comment attribute convention:
// lines of the form "+typeidgen:repr_c" or
// "+typeidgen:cfi_encoding=\"...\"" or "+typeidgen:conv=c", one per comment
// line. Any other comment text is ignored, the same way the host compiler
// ignores attributes it doesn't recognize.
func docDirectives(doc *ast.CommentGroup) map[string]string {
	out := make(map[string]string)
	if doc == nil {
		return out
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(c.Text, "//"), "/*"))
		if !strings.HasPrefix(text, "+typeidgen:") {
			continue
		}
		body := strings.TrimPrefix(text, "+typeidgen:")
		if idx := strings.IndexByte(body, '='); idx >= 0 {
			key := body[:idx]
			val := strings.TrimSpace(strings.Trim(body[idx+1:], `"`))
			out[key] = val
		} else {
			out[body] = ""
		}
	}
	return out
}
