// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"math/big"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/transform"
)

// bitWidth returns the declared width, in bits, of an Int/Uint type; used to
// sign-extend a const's raw bit pattern to its true mathematical value.
// Isize/Usize are treated as 64-bit, the same prototype simplification
// already adopted for the C integral wrapper table (see DESIGN.md).
func bitWidth(ty abi.Type) int {
	switch t := ty.(type) {
	case abi.Int:
		switch t.Width {
		case abi.I8:
			return 8
		case abi.I16:
			return 16
		case abi.I32:
			return 32
		case abi.I64, abi.Isize:
			return 64
		case abi.I128:
			return 128
		}
	case abi.Uint:
		switch t.Width {
		case abi.U8:
			return 8
		case abi.U16:
			return 16
		case abi.U32:
			return 32
		case abi.U64, abi.Usize:
			return 64
		case abi.U128:
			return 128
		}
	}
	abi.Unreachable("encode.bitWidth: unexpected const type %T", ty)
	return 0
}

// signExtend interprets bits as width-bit two's complement and returns its
// true mathematical value (negative when the sign bit is set).
func signExtend(bits *big.Int, width int) *big.Int {
	if bits.Bit(width-1) == 0 {
		return new(big.Int).Set(bits)
	}
	full := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return new(big.Int).Sub(bits, full)
}

// encodeConst renders a const per spec §4.D "encode_const": `L<enc ty>E`
// for a Param const, `L<enc ty>[n]<decimal value>E` for a concrete value
// (sign-extending signed integers to their true value and prepending `n`
// when negative, rendering unsigned integers and chars as plain decimal,
// booleans as 0/1).
func encodeConst(c abi.Const, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	tyEnc := Type(c.Type, d, opts, self)
	var buf string
	switch c.Kind {
	case abi.ConstParam:
		buf = "L" + tyEnc + "E"
	case abi.ConstValue:
		buf = "L" + tyEnc + valueDigits(c) + "E"
	default:
		abi.Unreachable("encode.encodeConst: unexpected const kind %d", c.Kind)
	}
	return compress(d, dict.ConstKey(buf), buf)
}

func valueDigits(c abi.Const) string {
	v := c.Value
	switch v.Kind {
	case abi.ValueInt:
		signed := signExtend(v.Bits, bitWidth(c.Type))
		if signed.Sign() < 0 {
			return "n" + new(big.Int).Neg(signed).String()
		}
		return signed.String()
	case abi.ValueUint, abi.ValueChar:
		return v.Bits.String()
	case abi.ValueBool:
		if v.Bool {
			return "1"
		}
		return "0"
	default:
		abi.Unreachable("encode.valueDigits: unexpected value kind %d", v.Kind)
		return ""
	}
}
