// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdselfptr implements the selfptr subcommand of the typeidgen
// tool: given a named receiver type, it prints the result of peeling that
// type down to its thin raw pointer or reference (spec §4.F
// force_thin_self_ptr).
package cmdselfptr

import (
	"context"
	"fmt"
	"go/types"
	"os"
	"runtime"

	"flag"
	"github.com/google/subcommands"
	"golang.org/x/tools/go/packages"

	"google.golang.org/typeidgen/internal/dict"
	"google.golang.org/typeidgen/internal/encode"
	"google.golang.org/typeidgen/internal/gotypes"
	"google.golang.org/typeidgen/internal/selfptr"
	"google.golang.org/typeidgen/internal/transform"
)

// Cmd implements the selfptr subcommand of the typeidgen tool.
type Cmd struct {
	typeName string
}

// Name implements subcommand.Command.
func (*Cmd) Name() string { return "selfptr" }

// Synopsis implements subcommand.Command.
func (*Cmd) Synopsis() string {
	return "print the thin-self-ptr reduction of a named receiver type"
}

// Usage implements subcommand.Command.
func (*Cmd) Usage() string {
	return `Usage: typeidgen selfptr -type=<TypeName> <go package pattern> [<pattern>...]

Loads the given Go package patterns, looks up -type among their declared
types, and prints the result of repeatedly peeling its unique non-zero-sized
field until a raw pointer or reference is reached.
`
}

// SetFlags implements subcommand.Command.
func (cmd *Cmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.typeName, "type", "", "name of the receiver type to reduce")
}

func (cmd *Cmd) run(ctx context.Context, patterns []string) error {
	if cmd.typeName == "" {
		return fmt.Errorf("selfptr: -type is required")
	}

	pkgs, err := gotypes.LoadPackages(ctx, patterns)
	if err != nil {
		return err
	}

	conv := gotypes.New(types.SizesFor("gc", runtime.GOARCH))
	conv.Collect(pkgs) // registers every declared struct's Def, including repr(C)/cfi_encoding directives.

	named, err := findNamed(pkgs, cmd.typeName)
	if err != nil {
		return err
	}

	ty := conv.Type(named)
	reduced := selfptr.ForceThinSelfPtr(ty, conv.LayoutOf)

	d := dict.New()
	fmt.Println(encode.Type(transform.Transform(reduced, 0, transform.SelfContext{}), d, 0, transform.SelfContext{}))
	return nil
}

func findNamed(pkgs []*packages.Package, name string) (*types.Named, error) {
	for _, pkg := range pkgs {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		return named, nil
	}
	return nil, fmt.Errorf("selfptr: no type named %q found among the loaded packages", name)
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
