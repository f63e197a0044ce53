// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"math/big"
	"testing"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/transform"
)

func TestConstSignedBoundaryI128Min(t *testing.T) {
	// The raw two's complement bit pattern for i128::MIN is 1<<127.
	bits := new(big.Int).Lsh(big.NewInt(1), 127)
	c := abi.Const{
		Kind: abi.ConstValue,
		Type: abi.Int{Width: abi.I128},
		Value: abi.Value{
			Kind: abi.ValueInt,
			Bits: bits,
		},
	}
	d := dict.New()
	got := encodeConst(c, d, 0, transform.SelfContext{})
	want := "Lu4i128n170141183460469231731687303715884105728E"
	if got != want {
		t.Errorf("encodeConst(i128::MIN) = %q; want %q", got, want)
	}
}

func TestConstUnsignedAndBoolAndChar(t *testing.T) {
	testcases := []struct {
		name string
		c    abi.Const
		want string
	}{
		{
			"uint",
			abi.Const{Kind: abi.ConstValue, Type: abi.Uint{Width: abi.U32}, Value: abi.Value{Kind: abi.ValueUint, Bits: big.NewInt(42)}},
			"Lu3u3242E",
		},
		{
			"bool true",
			abi.Const{Kind: abi.ConstValue, Type: abi.Bool{}, Value: abi.Value{Kind: abi.ValueBool, Bool: true}},
			"Lb1E",
		},
		{
			"bool false",
			abi.Const{Kind: abi.ConstValue, Type: abi.Bool{}, Value: abi.Value{Kind: abi.ValueBool, Bool: false}},
			"Lb0E",
		},
		{
			"char",
			abi.Const{Kind: abi.ConstValue, Type: abi.Char{}, Value: abi.Value{Kind: abi.ValueChar, Bits: big.NewInt(0x1F600)}},
			"Lu4char128512E",
		},
		{
			"param",
			abi.Const{Kind: abi.ConstParam, Type: abi.Uint{Width: abi.Usize}},
			"Lu5usizeE",
		},
	}
	for _, tc := range testcases {
		d := dict.New()
		if got := encodeConst(tc.c, d, 0, transform.SelfContext{}); got != tc.want {
			t.Errorf("%s: encodeConst = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestConstNegativeSmallWidth(t *testing.T) {
	// -1 as an i8's raw bit pattern is 0xFF.
	c := abi.Const{
		Kind: abi.ConstValue,
		Type: abi.Int{Width: abi.I8},
		Value: abi.Value{Kind: abi.ValueInt, Bits: big.NewInt(0xFF)},
	}
	d := dict.New()
	got := encodeConst(c, d, 0, transform.SelfContext{})
	if want := "Lu2i8n1E"; got != want {
		t.Errorf("encodeConst(-1i8) = %q; want %q", got, want)
	}
}
