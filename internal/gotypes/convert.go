// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes

import (
	"go/types"
	"math/big"

	"google.golang.org/typeidgen/internal/abi"
)

// Type converts a go/types.Type into the corresponding internal/abi.Type.
// It covers the Go type shapes that can actually appear in a CFI-relevant
// function signature (basics, pointers, slices, arrays, named structs,
// interfaces, function types); channels, maps and complex numbers have no
// equivalent in the type system this encoder targets and are reported via
// abi.Unreachable, the same way the original only ever sees already
// -monomorphized, already-lowered IR.
func (c *Converter) Type(t types.Type) abi.Type {
	switch t := t.(type) {
	case *types.Basic:
		return c.basic(t)
	case *types.Pointer:
		return abi.RawPtr{Elem: c.Type(t.Elem()), Mutable: true}
	case *types.Slice:
		return abi.Slice{Elem: c.Type(t.Elem())}
	case *types.Array:
		return abi.Array{
			Elem: c.Type(t.Elem()),
			Len: abi.Const{
				Kind: abi.ConstValue,
				Type: abi.Uint{Width: abi.Usize},
				Value: abi.Value{
					Kind: abi.ValueUint,
					Bits: big.NewInt(t.Len()),
				},
			},
		}
	case *types.Named:
		return c.named(t)
	case *types.Interface:
		return abi.Dynamic{Region: abi.Region{Kind: abi.RegionErased}, Kind: abi.Dyn}
	case *types.Signature:
		return abi.FnPtr{Sig: c.FnSig(t)}
	case *types.Struct:
		// An anonymous (unnamed) struct has no Def to hang ty_name or
		// cfi_encoding off of; model its fields as a Tuple, the nearest
		// internal/abi shape for an anonymous product type.
		elems := make([]abi.Type, t.NumFields())
		for i := 0; i < t.NumFields(); i++ {
			elems[i] = c.Type(t.Field(i).Type())
		}
		return abi.Tuple{Elems: elems}
	default:
		abi.Unreachable("gotypes.Converter.Type: unsupported Go type %v (%T)", t, t)
		return nil
	}
}

func (c *Converter) basic(t *types.Basic) abi.Type {
	switch t.Name() {
	case "bool":
		return abi.Bool{}
	case "string":
		return abi.Str{}
	case "int":
		return abi.Int{Width: abi.Isize}
	case "int8":
		return abi.Int{Width: abi.I8}
	case "int16":
		return abi.Int{Width: abi.I16}
	case "int32", "rune":
		return abi.Int{Width: abi.I32}
	case "int64":
		return abi.Int{Width: abi.I64}
	case "uint", "uintptr":
		return abi.Uint{Width: abi.Usize}
	case "uint8", "byte":
		return abi.Uint{Width: abi.U8}
	case "uint16":
		return abi.Uint{Width: abi.U16}
	case "uint32":
		return abi.Uint{Width: abi.U32}
	case "uint64":
		return abi.Uint{Width: abi.U64}
	case "float32":
		return abi.Float{Width: abi.F32}
	case "float64":
		return abi.Float{Width: abi.F64}
	default:
		abi.Unreachable("gotypes.Converter.basic: unsupported basic kind %v", t)
		return nil
	}
}

// named converts a *types.Named. Its Def (and therefore ReprC/CfiEncoding)
// comes from whatever attrs were registered for it via RegisterDef; a named
// type that was never registered (because the loader never saw its
// declaration's doc comment, e.g. a type from an already-compiled
// dependency) still converts, just with a bare, attribute-free Def.
func (c *Converter) named(t *types.Named) abi.Type {
	def, ok := c.defs[t]
	if !ok {
		def = c.plainDef(t)
		c.defs[t] = def
	}
	if _, isStruct := t.Underlying().(*types.Struct); isStruct {
		return abi.Adt{Def: def}
	}
	if _, isIface := t.Underlying().(*types.Interface); isIface {
		return abi.Dynamic{Region: abi.Region{Kind: abi.RegionErased}, Kind: abi.Dyn}
	}
	// A named non-struct, non-interface type (type MyInt int, ...): it has
	// no fields of its own, so it behaves like the underlying basic type
	// wrapped in a Foreign-ish opaque Def for naming purposes.
	return abi.Foreign{Def: def}
}

// plainDef synthesizes an attribute-free Def for a *types.Named that
// RegisterDef never saw (see named's doc comment).
func (c *Converter) plainDef(t *types.Named) *abi.Def {
	obj := t.Obj()
	pkg := obj.Pkg()
	crateName := ""
	var pkgPath string
	if pkg != nil {
		crateName = pkg.Name()
		pkgPath = pkg.Path()
	}
	def := &abi.Def{
		Path:          []abi.PathComponent{{Tag: abi.TagTypeNS, Name: obj.Name()}},
		StableCrateID: stableCrateID(pkgPath),
		CrateName:     crateName,
		ItemName:      obj.Name(),
	}
	if s, ok := t.Underlying().(*types.Struct); ok {
		c.structs[def] = s
	}
	return def
}
