// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gotypes

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"google.golang.org/typeidgen/internal/errutil"
)

const loadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax |
	packages.NeedImports |
	packages.NeedDeps

// LoadPackages loads every pattern concurrently (mirroring
// internal/o2o/rewrite.Cmd's --parallel_jobs fan-out over
// golang.org/x/sync/errgroup) and returns the concatenation of their
// resulting *packages.Package values. This is the one I/O boundary in this
// module where a real failure (a pattern that doesn't resolve, a package
// that fails to type-check) is expected and gets annotated with
// internal/errutil rather than treated as an internal bug.
func LoadPackages(ctx context.Context, patterns []string) (pkgs []*packages.Package, err error) {
	defer errutil.Annotatef(&err, "gotypes.LoadPackages(%v)", patterns)

	cfg := &packages.Config{Context: ctx, Mode: loadMode}
	results := make([][]*packages.Package, len(patterns))

	eg, egCtx := errgroup.WithContext(ctx)
	cfg.Context = egCtx
	for i, pattern := range patterns {
		eg.Go(func() error {
			loaded, err := packages.Load(cfg, pattern)
			if err != nil {
				return err
			}
			for _, p := range loaded {
				if len(p.Errors) > 0 {
					return p.Errors[0]
				}
			}
			results[i] = loaded
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		pkgs = append(pkgs, r...)
	}
	return pkgs, nil
}
