// Package integrations provides HTTP clients for the upstream APIs that
// cargo-scorecard queries.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [crates]: crates.io registry, maps a crate name to its repository URL
//   - [scorecard]: OpenSSF Scorecard API, maps a repository to a score
//
// # Client Pattern
//
// Both clients embed the shared [Client] and follow the same shape:
//
//	hc := integrations.NewHTTPClient(10 * time.Second)
//	registry := crates.NewClient(hc)
//	repo, err := registry.Resolve(ctx, "serde")
//
// # Shared Infrastructure
//
// [Client] applies the cargo-scorecard User-Agent, sends exactly one request
// per call (no retries, no caching) and classifies failures as transport,
// HTTP status or parse errors using the codes in [errors].
//
// [crates]: github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/crates
// [scorecard]: github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/scorecard
// [errors]: github.com/ChenhuiZhang/cargo-scorecard/pkg/errors
package integrations
