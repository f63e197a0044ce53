// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes_test

import (
	"go/ast"
	"go/types"
	"testing"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/gotypes"
)

func newFunc(pkg *types.Package, name string, recv *types.Var, params, results []*types.Var, variadic bool) *types.Func {
	sig := types.NewSignatureType(recv, nil, nil, types.NewTuple(params...), types.NewTuple(results...), variadic)
	return types.NewFunc(0, pkg, name, sig)
}

func TestFnAbiFromFuncNoArgsNoReturn(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	fn := newFunc(pkg, "DoIt", nil, nil, nil, false)

	c := gotypes.New(sizes())
	got := c.FnAbiFromFunc(fn, nil)
	if got.Conv != abi.ConvOther {
		t.Errorf("Conv = %v; want ConvOther without a directive", got.Conv)
	}
	if got.Ret.Type != (abi.Unit{}) {
		t.Errorf("Ret.Type = %#v; want Unit{}", got.Ret.Type)
	}
	if len(got.Args) != 0 {
		t.Errorf("Args = %v; want none", got.Args)
	}
}

func TestFnAbiFromFuncConvCDirective(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	fn := newFunc(pkg, "CCall", nil, nil, nil, false)

	c := gotypes.New(sizes())
	got := c.FnAbiFromFunc(fn, &ast.CommentGroup{List: []*ast.Comment{{Text: "// +typeidgen:conv=c"}}})
	if got.Conv != abi.ConvC {
		t.Errorf("Conv = %v; want ConvC with +typeidgen:conv=c", got.Conv)
	}
}

func TestFnAbiFromFuncMultipleResultsBecomeTuple(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	results := []*types.Var{
		types.NewVar(0, pkg, "", types.Typ[types.Int32]),
		types.NewVar(0, pkg, "", types.Typ[types.Bool]),
	}
	fn := newFunc(pkg, "TwoResults", nil, nil, results, false)

	c := gotypes.New(sizes())
	got := c.FnAbiFromFunc(fn, nil)
	tup, ok := got.Ret.Type.(abi.Tuple)
	if !ok || len(tup.Elems) != 2 {
		t.Fatalf("Ret.Type = %#v; want a 2-element Tuple", got.Ret.Type)
	}
}

func TestInstanceCarriesSelfType(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	named := types.NewNamed(types.NewTypeName(0, pkg, "Widget", nil), types.NewStruct(nil, nil), nil)
	recvVar := types.NewVar(0, pkg, "", named)
	fn := newFunc(pkg, "Method", recvVar, nil, nil, false)

	c := gotypes.New(sizes())
	instance := c.Instance(named, fn, nil)
	adt, ok := instance.SelfType.(abi.Adt)
	if !ok {
		t.Fatalf("Instance.SelfType = %#v; want abi.Adt", instance.SelfType)
	}
	if adt.Def.ItemName != "Widget" {
		t.Errorf("Instance.SelfType.Def.ItemName = %q; want %q", adt.Def.ItemName, "Widget")
	}
}
