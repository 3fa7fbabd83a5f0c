// Package enrich runs the concurrent enrichment pipeline of cargo-scorecard.
//
// # Overview
//
// For every dependency of a batch, [Enricher.Enrich] runs two chained
// lookups in its own goroutine:
//
//  1. [Resolver]: crate name → repository URL (crates.io)
//  2. [Scorer]: repository URL → security score (OpenSSF Scorecard)
//
// The scoring step runs only when step 1 found a repository. Per item the
// pipeline moves through:
//
//	Start → ResolvingRepo → ResolvedSome → ScoringRepo → Done
//	                      → ResolvedNone → Done
//	                      → ResolveFailed → Done
//
// Lookup results are folded into the [ResolveOutcome] and [ScoreOutcome]
// sum types and matched exhaustively, so the failure policy is explicit:
// every failure becomes a nil field on that item's [Result] and nothing
// aborts the batch.
//
// # Ordering
//
// Results come back in input order regardless of completion order: each
// goroutine writes only its own slot of a pre-sized slice, and Enrich
// returns after all of them have finished.
//
// # Panics
//
// An item whose pipeline panics is not dropped. It is returned as a
// placeholder with Name and Version set, nil lookups, and Err carrying
// [errors.ErrCodeBatchItem].
//
// [errors.ErrCodeBatchItem]: github.com/ChenhuiZhang/cargo-scorecard/pkg/errors.ErrCodeBatchItem
package enrich
