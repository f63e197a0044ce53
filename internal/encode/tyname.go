// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"strconv"
	"strings"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/numeral"
)

// tyName renders a crate-qualified path suitable for vendor-extended types
// (spec §4.D "ty_name(def_id)"), not using v0's extended <path> grammar:
//  1. a namespace-tag walk, leaf-first, emitting `N` + one tag letter per
//     def-path component;
//  2. the defining crate's identity, `C<disambiguator><len><crate name>`;
//  3. a second root-first walk emitting `[<disambiguator>]<len><name>` per
//     component (the disambiguator only when it is nonzero), escaping names
//     that would otherwise be misread as part of the preceding length field.
func tyName(def *abi.Def) string {
	var b strings.Builder
	for i := len(def.Path) - 1; i >= 0; i-- {
		b.WriteString("N")
		b.WriteString(def.Path[i].Letter())
	}
	b.WriteString("C")
	b.WriteString(numeral.Disambiguator(def.StableCrateID))
	b.WriteString(strconv.Itoa(len(def.CrateName)))
	b.WriteString(def.CrateName)
	for _, c := range def.Path {
		if c.Disambiguator > 0 {
			b.WriteString(numeral.Disambiguator(c.Disambiguator))
		}
		b.WriteString(escapedNameToken(c.Name))
	}
	return b.String()
}

// escapedNameToken renders <len><name>, prefixing name with an extra
// underscore when it would otherwise start with a digit or an underscore
// and be misread as continuing the preceding length field.
func escapedNameToken(name string) string {
	if name == "" {
		abi.Unreachable("encode.escapedNameToken: empty path component name")
	}
	if name[0] == '_' || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return strconv.Itoa(len(name)) + name
}
