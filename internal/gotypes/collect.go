// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"google.golang.org/typeidgen/internal/abi"
)

// Collected is every CFI-relevant item Collect found across a batch of
// loaded packages: free functions convert straight to FnAbi; methods
// convert to Instance, carrying their receiver's Self type for the
// self-type-erasure rule.
type Collected struct {
	Funcs     []abi.FnAbi
	Instances []abi.Instance
}

// Collect walks pkgs in two passes: first every named type declaration,
// registering its Def (and therefore any repr(C)/cfi_encoding
// doc directives) before anything can reference it; then every function
// and method declaration, converting each into the Collected result. The
// two-pass split matters because a function can reference a struct type
// declared later in the same file or package.
func (c *Converter) Collect(pkgs []*packages.Package) Collected {
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.TYPE {
					continue
				}
				for _, spec := range gd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					named, ok := namedTypeOf(pkg.TypesInfo, ts.Name)
					if !ok {
						continue
					}
					doc := ts.Doc
					if doc == nil {
						doc = gd.Doc
					}
					c.RegisterDef(named, doc)
				}
			}
		}
	}

	var out Collected
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok {
					continue
				}
				fn, ok := funcObjOf(pkg.TypesInfo, fd.Name)
				if !ok {
					continue
				}
				sig := fn.Type().(*types.Signature)
				if sig.Recv() == nil {
					out.Funcs = append(out.Funcs, c.FnAbiFromFunc(fn, fd.Doc))
					continue
				}
				recv, ok := baseNamed(sig.Recv().Type())
				if !ok {
					continue
				}
				out.Instances = append(out.Instances, c.Instance(recv, fn, fd.Doc))
			}
		}
	}
	return out
}

func namedTypeOf(info *types.Info, id *ast.Ident) (*types.Named, bool) {
	obj, ok := info.Defs[id]
	if !ok || obj == nil {
		return nil, false
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, false
	}
	named, ok := tn.Type().(*types.Named)
	return named, ok
}

func funcObjOf(info *types.Info, id *ast.Ident) (*types.Func, bool) {
	obj, ok := info.Defs[id]
	if !ok || obj == nil {
		return nil, false
	}
	fn, ok := obj.(*types.Func)
	return fn, ok
}

// baseNamed strips a single pointer-receiver indirection, since Self in
// this model is always the value type, never `&Self`/`*Self` itself (the
// reference/pointer-ness of a Go pointer receiver is a detail of how the
// method is called, not part of Self's identity).
func baseNamed(t types.Type) (*types.Named, bool) {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	n, ok := t.(*types.Named)
	return n, ok
}
