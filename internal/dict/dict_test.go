// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict_test

import (
	"testing"

	"google.golang.org/typeidgen/internal/dict"
)

func TestCompressFirstOccurrenceUnchanged(t *testing.T) {
	d := dict.New()
	key := dict.TypeKey("u3i32", dict.QualNone)
	got := d.Compress(key, "u3i32")
	if got != "u3i32" {
		t.Errorf("Compress(first) = %q; want unchanged %q", got, "u3i32")
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d; want 1", d.Len())
	}
}

func TestCompressSecondOccurrenceBackreference(t *testing.T) {
	d := dict.New()
	key := dict.TypeKey("u3i32", dict.QualNone)
	d.Compress(key, "u3i32")
	got := d.Compress(key, "u3i32")
	if got != "S_" {
		t.Errorf("Compress(second) = %q; want %q", got, "S_")
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d; want 1 (no new slot on repeat)", d.Len())
	}
}

func TestCompressSequenceIDsIncrement(t *testing.T) {
	d := dict.New()
	keys := []dict.Key{
		dict.TypeKey("b", dict.QualNone),
		dict.TypeKey("u3i32", dict.QualNone),
		dict.TypeKey("u3i64", dict.QualNone),
	}
	for _, k := range keys {
		d.Compress(k, "x")
	}
	want := []string{"S_", "S0_", "S1_"}
	for i, k := range keys {
		if got := d.Compress(k, "x"); got != want[i] {
			t.Errorf("Compress(keys[%d] again) = %q; want %q", i, got, want[i])
		}
	}
}

func TestQualifierDistinguishesSlots(t *testing.T) {
	d := dict.New()
	plain := dict.TypeKey("u3i32", dict.QualNone)
	constQ := dict.TypeKey("u3i32", dict.QualConst)
	d.Compress(plain, "u3i32")
	got := d.Compress(constQ, "u3i32")
	if got != "u3i32" {
		t.Errorf("Compress(different qualifier) = %q; want unchanged %q (distinct slot)", got, "u3i32")
	}
}

func TestKindDistinguishesSlots(t *testing.T) {
	d := dict.New()
	ty := dict.TypeKey("foo", dict.QualNone)
	region := dict.RegionKey("foo")
	d.Compress(ty, "foo")
	got := d.Compress(region, "foo")
	if got != "foo" {
		t.Errorf("Compress(region with same canonical as type) = %q; want unchanged %q (distinct kind)", got, "foo")
	}
}
