// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

// CIntegralEncodings is the fixed Itanium token table for the C-interop
// integral wrapper types (`core::ffi::cfi`'s `c_char`, `c_int`, ...),
// reproduced from original_source/library/core/src/ffi/cfi.rs. Each of
// these types is a `#[repr(transparent)]` newtype that exists solely to
// carry a `#[cfi_encoding = "..."]` attribute matching the corresponding
// built-in Itanium token. The table is data only: neither internal/encode
// nor internal/gotypes consults it, so a type is encoded by one of these
// tokens only through its own cfi_encoding attribute.
//
// Per spec §9's open question, c_ssize_t and c_size_t are encoded as
// documented prototype simplifications (as if every target used `long long`
// and `unsigned long long` respectively) rather than parameterized on
// target data layout; this repository has no target-spec table (out of
// scope per spec §1) to parameterize on, so it reproduces the
// simplification rather than resolving it.
var CIntegralEncodings = map[string]string{
	"c_char":      "c",
	"c_schar":     "a",
	"c_short":     "s",
	"c_int":       "i",
	"c_long":      "l",
	"c_longlong":  "x",
	"c_ssize_t":   "x",
	"c_uchar":     "h",
	"c_ushort":    "t",
	"c_uint":      "j",
	"c_ulong":     "m",
	"c_ulonglong": "y",
	"c_size_t":    "y",
	"c_float":     "f",
	"c_double":    "d",
}

// BuiltinItaniumTokens is the set of built-in Itanium tokens the ABI
// forbids compressing (spec §6: "the Itanium ABI forbids compressing
// built-in types"). A cfi_encoding override equal to one of these must
// never be inserted into the substitution dictionary.
var BuiltinItaniumTokens = map[string]bool{
	"v": true, "w": true, "b": true, "c": true, "a": true, "h": true,
	"s": true, "t": true, "i": true, "j": true, "l": true, "m": true,
	"x": true, "y": true, "n": true, "o": true, "f": true, "d": true,
	"e": true, "g": true, "z": true, "Dh": true,
}
