// Package deps defines the dependency batch that cargo-scorecard enriches
// and the [Lister] contract for producing it.
//
// # Overview
//
// A [Dependency] is a (name, version) pair. Listers obtain the batch from
// local project tooling; the Rust listers live in [rust]:
//
//   - [rust.CargoTree]: runs `cargo tree --prefix none`
//   - [rust.Lockfile]: reads the [[package]] entries of Cargo.lock
//
// # Line Format
//
// [ParseList] accepts the intermediate text form used between the lister
// and the pipeline: one "name version" pair per line, whitespace-separated.
// Input is sorted and deduplicated; malformed lines are dropped.
//
//	deps, err := deps.ParseList(strings.NewReader("serde v1.0.0\nlibc v0.2.0\n"))
//	// [{libc v0.2.0} {serde v1.0.0}]
//
// [rust]: github.com/ChenhuiZhang/cargo-scorecard/pkg/deps/rust
// [rust.CargoTree]: github.com/ChenhuiZhang/cargo-scorecard/pkg/deps/rust.CargoTree
// [rust.Lockfile]: github.com/ChenhuiZhang/cargo-scorecard/pkg/deps/rust.Lockfile
package deps
