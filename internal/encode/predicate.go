// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"strconv"
	"strings"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/transform"
)

// encodePredicates renders a `dyn Trait + ...` existential predicate list in
// order (spec §4.D "encode_predicates"); each predicate is compressed
// individually under its own DictKey::Predicate slot.
func encodePredicates(preds []abi.ExistentialPredicate, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	var b strings.Builder
	for _, p := range preds {
		b.WriteString(encodePredicate(p, d, opts, self))
	}
	return b.String()
}

func encodePredicate(p abi.ExistentialPredicate, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	name := tyName(p.Def)
	var buf string
	switch p.Kind {
	case abi.PredTrait:
		buf = "u" + strconv.Itoa(len(name)) + name + encodeArgs(p.Args, d, opts, self)
	case abi.PredProjection:
		term := encodeTerm(p.Term, d, opts, self)
		buf = "u" + strconv.Itoa(len(name)) + name + encodeArgs(p.Args, d, opts, self) + term
	case abi.PredAutoTrait:
		buf = "u" + strconv.Itoa(len(name)) + name
	default:
		abi.Unreachable("encode.encodePredicate: unexpected predicate kind %d", p.Kind)
	}
	return compress(d, dict.PredicateKey(buf), buf)
}

func encodeTerm(t abi.Term, d *dict.Dictionary, opts transform.Options, self transform.SelfContext) string {
	if t.Const != nil {
		return encodeConst(*t.Const, d, opts, self)
	}
	return Type(t.Type, d, opts, self)
}
