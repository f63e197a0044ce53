// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi_test

import (
	"testing"

	"google.golang.org/typeidgen/internal/abi"
)

func TestPathTagLetters(t *testing.T) {
	testcases := []struct {
		tag  abi.PathTag
		want string
	}{
		{abi.TagImpl, "I"},
		{abi.TagForeignMod, "F"},
		{abi.TagTypeNS, "t"},
		{abi.TagValueNS, "v"},
		{abi.TagClosure, "C"},
		{abi.TagCtor, "c"},
		{abi.TagAnonConst, "k"},
		{abi.TagOpaqueTy, "i"},
	}
	for _, tc := range testcases {
		c := abi.PathComponent{Tag: tc.tag}
		if got := c.Letter(); got != tc.want {
			t.Errorf("PathComponent{Tag: %v}.Letter() = %q; want %q", tc.tag, got, tc.want)
		}
	}
}

func TestPathTagLetterUnreachablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Letter() on an invalid tag did not panic")
		}
	}()
	abi.PathComponent{Tag: abi.PathTag(99)}.Letter()
}

func TestCIntegralEncodingsCoverage(t *testing.T) {
	want := []string{
		"c_char", "c_schar", "c_short", "c_int", "c_long", "c_longlong",
		"c_ssize_t", "c_uchar", "c_ushort", "c_uint", "c_ulong",
		"c_ulonglong", "c_size_t", "c_float", "c_double",
	}
	for _, name := range want {
		if _, ok := abi.CIntegralEncodings[name]; !ok {
			t.Errorf("CIntegralEncodings missing entry for %q", name)
		}
	}
}

func TestBuiltinItaniumTokensDoesNotIncludeVendorExtensions(t *testing.T) {
	for _, tok := range []string{"u3i32", "u5param", "u3str"} {
		if abi.BuiltinItaniumTokens[tok] {
			t.Errorf("BuiltinItaniumTokens unexpectedly contains vendor token %q", tok)
		}
	}
}
