// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

import (
	"fmt"

	log "github.com/golang/glog"
)

// Unreachable reports a programmer error: an input shape spec §7 classifies
// as "must not appear after monomorphization" (an Alias/Bound/Error/
// CoroutineWitness/Infer/Placeholder type, an unreachable region or const
// kind, a malformed def-path, ...). It is not a recoverable condition; the
// caller is expected to have produced already-monomorphized, already-
// lowered IR, so seeing one of these is a bug upstream of the encoder, not
// user input. Logging via glog before panicking keeps the offending input
// on record even when the panic is later recovered by a host harness.
//
// Used by internal/abi itself and by internal/encode, internal/transform
// and internal/selfptr, which all operate on abi.Type values and hit the
// same class of unreachable input.
func Unreachable(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Errorf("BUG: %s", msg)
	panic("BUG: " + msg)
}
