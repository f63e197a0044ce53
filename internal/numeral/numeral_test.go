// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral_test

import (
	"testing"

	"google.golang.org/typeidgen/internal/numeral"
)

func TestDisambiguator(t *testing.T) {
	testcases := []struct {
		n    uint64
		want string
	}{
		{0, "s_"},
		{1, "s0_"},
		{2, "s1_"},
		{10, "s9_"},
		{11, "sa_"},
		{62, "sZ_"},
		{63, "s10_"},
	}
	for _, tc := range testcases {
		if got := numeral.Disambiguator(tc.n); got != tc.want {
			t.Errorf("Disambiguator(%d) = %q; want %q", tc.n, got, tc.want)
		}
	}
}

func TestSeqID(t *testing.T) {
	testcases := []struct {
		n    uint64
		want string
	}{
		{0, ""},
		{1, "0"},
		{2, "1"},
		{10, "9"},
		{11, "A"},
		{36, "Z"},
		{37, "10"},
	}
	for _, tc := range testcases {
		if got := numeral.SeqID(tc.n); got != tc.want {
			t.Errorf("SeqID(%d) = %q; want %q", tc.n, got, tc.want)
		}
	}
}
