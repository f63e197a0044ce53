// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeral encodes non-negative integers as the base-36 and base-62
// numerals used by the Itanium mangling scheme for disambiguators and
// back-reference sequence IDs.
package numeral

import "strings"

const (
	base36Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	base62Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Disambiguator returns the Itanium vendor disambiguator for n: "s_" when n
// is zero, otherwise "s" followed by the base-62 encoding of n-1 and a
// trailing underscore. n must be non-negative; the function is total over
// that domain by construction (callers only ever pass counts).
func Disambiguator(n uint64) string {
	if n == 0 {
		return "s_"
	}
	var b strings.Builder
	b.WriteByte('s')
	b.WriteString(encode(n-1, base62Digits))
	b.WriteByte('_')
	return b.String()
}

// SeqID returns the dictionary back-reference numeral for index n: the empty
// string when n is zero, otherwise the uppercase base-36 encoding of n-1.
func SeqID(n uint64) string {
	if n == 0 {
		return ""
	}
	return encode(n-1, base36Digits)
}

// encode renders n in the given digit alphabet, most significant digit
// first. encode(0, ...) returns the alphabet's first digit.
func encode(n uint64, digits string) string {
	base := uint64(len(digits))
	if n == 0 {
		return digits[0:1]
	}
	var buf [32]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%base]
		n /= base
	}
	return string(buf[i:])
}
