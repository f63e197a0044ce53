// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selfptr_test

import (
	"reflect"
	"testing"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/selfptr"
)

// fakeHost is a small in-memory LayoutOf built from a map keyed by type
// identity (via reflect.DeepEqual through a linear scan, since abi.Type
// values aren't comparable in general — Tuple/Array/etc. embed slices).
type fakeHost []struct {
	ty     abi.Type
	layout selfptr.Layout
}

func (h fakeHost) layoutOf(ty abi.Type) selfptr.Layout {
	for _, e := range h {
		if reflect.DeepEqual(e.ty, ty) {
			return e.layout
		}
	}
	panic("fakeHost: no layout registered for type")
}

func TestForceThinSelfPtrAlreadyPointerIsReturnedUnchanged(t *testing.T) {
	ref := abi.Ref{Elem: abi.Bool{}, Mutable: false}
	host := fakeHost{
		{ref, selfptr.Layout{Sized: true}},
	}
	got := selfptr.ForceThinSelfPtr(ref, host.layoutOf)
	if !reflect.DeepEqual(got, ref) {
		t.Errorf("ForceThinSelfPtr(&T) = %#v; want %#v unchanged", got, ref)
	}
}

func TestForceThinSelfPtrPeelsSingleFieldWrapper(t *testing.T) {
	// struct Wrapper { _marker: PhantomData<()>, inner: &bool }
	ref := abi.Ref{Elem: abi.Bool{}, Mutable: false}
	wrapper := abi.Adt{Def: &abi.Def{ItemName: "Wrapper"}}
	host := fakeHost{
		{wrapper, selfptr.Layout{
			Sized: true,
			Fields: []selfptr.Field{
				{Type: abi.Tuple{}, OneByteZST: true},
				{Type: ref},
			},
		}},
		{ref, selfptr.Layout{Sized: true}},
	}
	got := selfptr.ForceThinSelfPtr(wrapper, host.layoutOf)
	if !reflect.DeepEqual(got, ref) {
		t.Errorf("ForceThinSelfPtr(Wrapper) = %#v; want the peeled reference %#v", got, ref)
	}
}

func TestForceThinSelfPtrPeelsNestedWrappers(t *testing.T) {
	ptr := abi.RawPtr{Elem: abi.Uint{Width: abi.U8}, Mutable: false}
	inner := abi.Adt{Def: &abi.Def{ItemName: "Inner"}}
	outer := abi.Adt{Def: &abi.Def{ItemName: "Outer"}}
	host := fakeHost{
		{outer, selfptr.Layout{Sized: true, Fields: []selfptr.Field{{Type: inner}}}},
		{inner, selfptr.Layout{Sized: true, Fields: []selfptr.Field{{Type: ptr}}}},
		{ptr, selfptr.Layout{Sized: true}},
	}
	got := selfptr.ForceThinSelfPtr(outer, host.layoutOf)
	if !reflect.DeepEqual(got, ptr) {
		t.Errorf("ForceThinSelfPtr(Outer) = %#v; want %#v", got, ptr)
	}
}

func TestForceThinSelfPtrPanicsOnUnsizedReceiver(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ForceThinSelfPtr on an unsized receiver did not panic")
		}
	}()
	dyn := abi.Dynamic{}
	host := fakeHost{{dyn, selfptr.Layout{Sized: false}}}
	selfptr.ForceThinSelfPtr(dyn, host.layoutOf)
}

func TestForceThinSelfPtrPanicsOnAmbiguousFields(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ForceThinSelfPtr on a struct with two non-ZST fields did not panic")
		}
	}()
	twoFields := abi.Adt{Def: &abi.Def{ItemName: "TwoFields"}}
	host := fakeHost{
		{twoFields, selfptr.Layout{
			Sized: true,
			Fields: []selfptr.Field{
				{Type: abi.Bool{}},
				{Type: abi.Bool{}},
			},
		}},
	}
	selfptr.ForceThinSelfPtr(twoFields, host.layoutOf)
}

func TestForceThinSelfPtrPanicsWhenNoFieldsRemain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ForceThinSelfPtr on an all-ZST struct did not panic")
		}
	}()
	allZST := abi.Adt{Def: &abi.Def{ItemName: "AllZST"}}
	host := fakeHost{
		{allZST, selfptr.Layout{
			Sized:  true,
			Fields: []selfptr.Field{{Type: abi.Tuple{}, OneByteZST: true}},
		}},
	}
	selfptr.ForceThinSelfPtr(allZST, host.layoutOf)
}
