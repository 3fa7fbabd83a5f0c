// Package rust provides dependency listers for Cargo projects.
//
// # Overview
//
// Two [deps.Lister] implementations produce the batch that the enrichment
// pipeline consumes:
//
//   - [CargoTree] runs `cargo tree --prefix none` and keeps lines of the
//     form "name version"; it needs a Rust toolchain on PATH.
//   - [Lockfile] reads Cargo.lock with BurntSushi/toml and needs nothing
//     but the file.
//
// Both return entries sorted and without duplicates. CargoTree versions keep
// cargo's "v" prefix ("v1.0.193"); Lockfile versions are bare ("1.0.193").
//
//	lister := rust.NewCargoTree("path/to/Cargo.toml")
//	list, err := lister.List(ctx)
//
// [deps.Lister]: github.com/ChenhuiZhang/cargo-scorecard/pkg/deps.Lister
package rust
