// Package pkg provides the libraries behind cargo-scorecard.
//
// # Overview
//
// cargo-scorecard reports, for every dependency of a Rust project, the
// source repository recorded on crates.io and that repository's OpenSSF
// Scorecard security score. The pkg directory is organized into:
//
//  1. [deps] - Dependency batches and listers (cargo tree, Cargo.lock, text)
//  2. [integrations] - Upstream API clients (crates.io, Scorecard)
//  3. [enrich] - Concurrent resolve-then-score pipeline
//  4. [report] - Markdown, table and JSON rendering
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	cargo tree / Cargo.lock
//	         ↓
//	    [deps] (sorted, unique name/version pairs)
//	         ↓
//	    [enrich] (one goroutine per dependency)
//	      ├─ crates.io: name → repository URL
//	      └─ Scorecard: repository URL → score
//	         ↓
//	    [report] (rows in input order)
//
// # Quick Start
//
//	import (
//	    "github.com/ChenhuiZhang/cargo-scorecard/pkg/deps/rust"
//	    "github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
//	    "github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations"
//	    "github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/crates"
//	    "github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/scorecard"
//	    "github.com/ChenhuiZhang/cargo-scorecard/pkg/report"
//	)
//
//	list, err := rust.NewCargoTree("").List(ctx)
//	if err != nil {
//	    return err
//	}
//
//	hc := integrations.NewHTTPClient(integrations.DefaultTimeout)
//	e := enrich.New(crates.NewClient(hc), scorecard.NewClient(hc), enrich.Options{})
//	results := e.Enrich(ctx, list)
//
//	return report.Markdown(os.Stdout, results)
//
// # Failure Policy
//
// Only listing can fail a run. Every lookup failure is confined to its own
// dependency and shows up as a missing repository or score in the report.
//
// [deps]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/deps
// [integrations]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations
// [enrich]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich
// [report]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/report
// [errors]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo
package pkg
