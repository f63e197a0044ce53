// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes

import (
	"go/ast"
	"go/types"

	"google.golang.org/typeidgen/internal/abi"
)

// RegisterDef builds and remembers the Def for a *types.Named struct type
// declared with doc, reading this package's doc-comment attribute
// convention (see docDirectives): "+typeidgen:repr_c" sets Def.ReprC, and
// "+typeidgen:cfi_encoding=\"...\"" sets Def.CfiEncoding, standing in for
// `#[repr(C)]`/`#[cfi_encoding = "..."]`. Call this for every type
// declaration a loader walks, before any reference to that type is
// converted with Type; a type converted before registration gets a bare,
// attribute-free Def (see Converter.named).
func (c *Converter) RegisterDef(named *types.Named, doc *ast.CommentGroup) *abi.Def {
	obj := named.Obj()
	pkg := obj.Pkg()
	crateName := ""
	var pkgPath string
	if pkg != nil {
		crateName = pkg.Name()
		pkgPath = pkg.Path()
	}

	def := &abi.Def{
		Path:          []abi.PathComponent{{Tag: abi.TagTypeNS, Name: obj.Name()}},
		StableCrateID: stableCrateID(pkgPath),
		CrateName:     crateName,
		ItemName:      obj.Name(),
	}

	directives := docDirectives(doc)
	if _, ok := directives["repr_c"]; ok {
		def.ReprC = true
	}
	if enc, ok := directives["cfi_encoding"]; ok {
		def.CfiEncoding = &enc
	}

	if s, ok := named.Underlying().(*types.Struct); ok {
		c.structs[def] = s
	}
	c.defs[named] = def
	return def
}

// methodDef builds the Def for a method (spec §3 "Def" applied to the
// value namespace): its def-path is the receiver type's own path component
// followed by a TagValueNS component for the method name, mirroring how a
// Rust inherent/trait impl method's def-path nests under its impl block.
func (c *Converter) methodDef(recv *types.Named, fn *types.Func) *abi.Def {
	recvDef := c.defs[recv]
	if recvDef == nil {
		recvDef = c.plainDef(recv)
		c.defs[recv] = recvDef
	}
	path := append(append([]abi.PathComponent{}, recvDef.Path...), abi.PathComponent{
		Tag:  abi.TagValueNS,
		Name: fn.Name(),
	})
	return &abi.Def{
		Path:          path,
		StableCrateID: recvDef.StableCrateID,
		CrateName:     recvDef.CrateName,
		ItemName:      fn.Name(),
	}
}
