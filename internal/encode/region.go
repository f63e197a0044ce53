// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encode

import (
	"strconv"

	"google.golang.org/typeidgen/internal/abi"
	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/numeral"
)

// encodeRegion renders a lifetime per spec §4.D "encode_region": a bound
// region emits `u6regionI<disambiguator(debruijn)><var_index>E`; erased and
// early-bound regions emit the bare tag with no index. Late-param, static,
// error, var and placeholder regions are unreachable after
// monomorphization.
func encodeRegion(r abi.Region, d *dict.Dictionary) string {
	var buf string
	switch r.Kind {
	case abi.RegionBound:
		buf = "u6regionI" + numeral.Disambiguator(r.Debruijn) + strconv.FormatUint(r.Var, 10) + "E"
	case abi.RegionErased, abi.RegionEarlyParam:
		buf = "u6region"
	default:
		abi.Unreachable("encode.encodeRegion: unexpected region kind %d", r.Kind)
	}
	return compress(d, dict.RegionKey(buf), buf)
}
