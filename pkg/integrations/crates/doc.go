// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package looks up crate metadata on crates.io (https://crates.io),
// the Rust community's package registry, and is the repository resolver of
// the enrichment pipeline.
//
// # Usage
//
//	client := crates.NewClient(integrations.NewHTTPClient(10 * time.Second))
//
//	repo, err := client.Resolve(ctx, "serde")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if repo != nil {
//	    fmt.Println("Repository:", *repo)
//	}
//
// # CrateInfo
//
// [Client.FetchCrate] returns a [CrateInfo] containing:
//
//   - Name, Version: Crate identity (max_version from API)
//   - Repository: Source repository URL, nil when unknown
//   - Description, License, HomePage, Downloads
//
// # User-Agent
//
// The client sends "cargo-scorecard/<version>" as User-Agent, as requested
// by crates.io policy.
package crates
