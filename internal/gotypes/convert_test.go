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

func sizes() types.Sizes { return types.SizesFor("gc", "amd64") }

func docComment(text string) *ast.CommentGroup {
	return &ast.CommentGroup{List: []*ast.Comment{{Text: "// " + text}}}
}

func TestConvertBasics(t *testing.T) {
	c := gotypes.New(sizes())
	testcases := []struct {
		name string
		ty   types.Type
		want abi.Type
	}{
		{"bool", types.Typ[types.Bool], abi.Bool{}},
		{"string", types.Typ[types.String], abi.Str{}},
		{"int", types.Typ[types.Int], abi.Int{Width: abi.Isize}},
		{"int32", types.Typ[types.Int32], abi.Int{Width: abi.I32}},
		{"uint64", types.Typ[types.Uint64], abi.Uint{Width: abi.U64}},
		{"float64", types.Typ[types.Float64], abi.Float{Width: abi.F64}},
	}
	for _, tc := range testcases {
		if got := c.Type(tc.ty); got != tc.want {
			t.Errorf("Type(%s) = %#v; want %#v", tc.name, got, tc.want)
		}
	}
}

func TestConvertPointerAndSlice(t *testing.T) {
	c := gotypes.New(sizes())
	ptr := types.NewPointer(types.Typ[types.Uint8])
	if got, want := c.Type(ptr), (abi.RawPtr{Elem: abi.Uint{Width: abi.U8}, Mutable: true}); got != want {
		t.Errorf("Type(*uint8) = %#v; want %#v", got, want)
	}
	slice := types.NewSlice(types.Typ[types.Uint8])
	if got, want := c.Type(slice), (abi.Slice{Elem: abi.Uint{Width: abi.U8}}); got != want {
		t.Errorf("Type([]uint8) = %#v; want %#v", got, want)
	}
}

func TestConvertArrayLength(t *testing.T) {
	c := gotypes.New(sizes())
	arr := types.NewArray(types.Typ[types.Bool], 4)
	got, ok := c.Type(arr).(abi.Array)
	if !ok {
		t.Fatalf("Type([4]bool) = %T; want abi.Array", c.Type(arr))
	}
	if got.Len.Value.Bits.Int64() != 4 {
		t.Errorf("array length = %v; want 4", got.Len.Value.Bits)
	}
}

func TestRegisterDefSetsReprCAndCfiEncoding(t *testing.T) {
	pkg := types.NewPackage("example.com/widget", "widget")
	named := types.NewNamed(
		types.NewTypeName(0, pkg, "Widget", nil),
		types.NewStruct(nil, nil),
		nil,
	)

	c := gotypes.New(sizes())
	def := c.RegisterDef(named, docComment("+typeidgen:repr_c"))
	if !def.ReprC {
		t.Error("RegisterDef with +typeidgen:repr_c did not set ReprC")
	}

	def2 := c.RegisterDef(named, docComment(`+typeidgen:cfi_encoding="i"`))
	if def2.CfiEncoding == nil || *def2.CfiEncoding != "i" {
		t.Errorf("RegisterDef with cfi_encoding directive = %v; want \"i\"", def2.CfiEncoding)
	}
}
