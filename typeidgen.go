// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The program typeidgen computes CFI (Control Flow Integrity) type
// metadata identifiers for Go function and method declarations, following
// the Itanium-with-vendor-extensions mangling scheme LLVM's KCFI sanitizer
// uses for its Rust frontend.
package main

import (
	"context"
	"os"
	"path"

	"flag"
	"github.com/google/subcommands"

	"google.golang.org/typeidgen/internal/cmdencode"
	"google.golang.org/typeidgen/internal/cmdselfptr"
	"google.golang.org/typeidgen/internal/version"
)

const groupOther = "working with this tool"

func main() {
	ctx := context.Background()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), groupOther)
	commander.Register(commander.FlagsCommand(), groupOther)
	commander.Register(version.Command(), groupOther)

	const groupTypeid = "computing type metadata identifiers"
	commander.Register(cmdencode.Command(), groupTypeid)
	commander.Register(cmdselfptr.Command(), groupTypeid)

	flag.Usage = func() {
		commander.HelpCommand().Execute(ctx, flag.CommandLine)
	}
	flag.Parse()

	os.Exit(int(commander.Execute(ctx)))
}
