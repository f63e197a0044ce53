// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes_test

import (
	"go/types"
	"testing"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/gotypes"
	"google.golang.org/typeidgen/internal/selfptr"
)

func TestLayoutOfRegisteredStructExposesFields(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	inner := types.NewPointer(types.Typ[types.Bool])
	marker := types.NewStruct(nil, nil) // zero-sized
	st := types.NewStruct([]*types.Var{
		types.NewField(0, pkg, "marker", marker, false),
		types.NewField(0, pkg, "inner", inner, false),
	}, nil)
	named := types.NewNamed(types.NewTypeName(0, pkg, "Wrapper", nil), st, nil)

	c := gotypes.New(sizes())
	def := c.RegisterDef(named, nil)

	layout := c.LayoutOf(abi.Adt{Def: def})
	if !layout.Sized {
		t.Fatal("LayoutOf(registered struct) reports unsized")
	}
	if len(layout.Fields) != 2 {
		t.Fatalf("LayoutOf(registered struct) = %d fields; want 2", len(layout.Fields))
	}
	if !layout.Fields[0].OneByteZST {
		t.Error("marker field (zero-sized struct) not reported as OneByteZST")
	}
	if layout.Fields[1].OneByteZST {
		t.Error("inner pointer field incorrectly reported as OneByteZST")
	}
}

func TestForceThinSelfPtrOverGotypesLayout(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	inner := types.NewPointer(types.Typ[types.Bool])
	marker := types.NewStruct(nil, nil)
	st := types.NewStruct([]*types.Var{
		types.NewField(0, pkg, "marker", marker, false),
		types.NewField(0, pkg, "inner", inner, false),
	}, nil)
	named := types.NewNamed(types.NewTypeName(0, pkg, "Wrapper", nil), st, nil)

	c := gotypes.New(sizes())
	def := c.RegisterDef(named, nil)
	wrapper := abi.Adt{Def: def}

	got := selfptr.ForceThinSelfPtr(wrapper, c.LayoutOf)
	if _, ok := got.(abi.RawPtr); !ok {
		t.Errorf("ForceThinSelfPtr(Wrapper) = %#v; want the inner raw pointer", got)
	}
}
