// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdencode implements the encode subcommand of the typeidgen tool:
// it loads one or more Go packages, and prints the CFI type metadata
// identifier (spec §4.E) for every function and method declaration found in
// them.
package cmdencode

import (
	"context"
	"fmt"
	"go/types"
	"os"
	"runtime"

	"flag"
	"github.com/google/subcommands"

	"google.golang.org/typeidgen/internal/gotypes"
	"google.golang.org/typeidgen/internal/transform"
	"google.golang.org/typeidgen/internal/typeid"
)

// Cmd implements the encode subcommand of the typeidgen tool.
type Cmd struct {
	generalizePointers bool
	generalizeReprC    bool
	normalizeIntegers  bool
	noSelfTypeErasure  bool
	kcfi               bool
}

// Name implements subcommand.Command.
func (*Cmd) Name() string { return "encode" }

// Synopsis implements subcommand.Command.
func (*Cmd) Synopsis() string {
	return "print CFI type metadata identifiers for Go package declarations"
}

// Usage implements subcommand.Command.
func (*Cmd) Usage() string {
	return `Usage: typeidgen encode [flags] <go package pattern> [<pattern>...]

Loads the given Go package patterns and prints one CFI type metadata
identifier per function and method declaration found in them.
`
}

// SetFlags implements subcommand.Command.
func (cmd *Cmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.generalizePointers, "generalize_pointers", false,
		"collapse every raw pointer/reference to one canonical opaque pointer type before encoding")
	f.BoolVar(&cmd.generalizeReprC, "generalize_repr_c", false,
		"request unscoped names for repr(C) structs; has no effect, since the bit is always set for C-convention signatures and cleared for all others")
	f.BoolVar(&cmd.normalizeIntegers, "normalize_integers", false,
		"apply integer normalization (fixed-width integers are already canonical and stay unchanged) and append the .normalized suffix")
	f.BoolVar(&cmd.noSelfTypeErasure, "no_self_type_erasure", false,
		"do not substitute a method's concrete receiver type with the opaque self-erasure sentinel")
	f.BoolVar(&cmd.kcfi, "kcfi", false,
		"print the 32-bit KCFI hash instead of the full textual identifier")
}

func (cmd *Cmd) options() transform.Options {
	var opts transform.Options
	if cmd.generalizePointers {
		opts = opts.With(transform.GeneralizePointers)
	}
	if cmd.generalizeReprC {
		opts = opts.With(transform.GeneralizeReprC)
	}
	if cmd.normalizeIntegers {
		opts = opts.With(transform.NormalizeIntegers)
	}
	if cmd.noSelfTypeErasure {
		opts = opts.With(transform.NoSelfTypeErasure)
	}
	return opts
}

func (cmd *Cmd) run(ctx context.Context, patterns []string) error {
	pkgs, err := gotypes.LoadPackages(ctx, patterns)
	if err != nil {
		return err
	}

	conv := gotypes.New(types.SizesFor("gc", runtime.GOARCH))
	collected := conv.Collect(pkgs)
	opts := cmd.options()

	for _, fnAbi := range collected.Funcs {
		cmd.print(typeid.ForFnAbi(fnAbi, opts), typeid.KCFIForFnAbi(fnAbi, opts))
	}
	for _, instance := range collected.Instances {
		cmd.print(typeid.ForInstance(instance, opts), typeid.KCFIForInstance(instance, opts))
	}
	return nil
}

func (cmd *Cmd) print(identifier string, hash uint32) {
	if cmd.kcfi {
		fmt.Printf("%d\n", hash)
		return
	}
	fmt.Println(identifier)
}

// Execute implements subcommand.Command.
func (cmd *Cmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := cmd.run(ctx, f.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Command returns an initialized Cmd for registration with the subcommands
// package.
func Command() *Cmd {
	return &Cmd{}
}
