package enrich

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/deps"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/observability"
)

// Terminal item states reported to [observability.EnrichHooks].
const (
	StateScored        = "scored"
	StateUnscored      = "unscored"
	StateScoreFailed   = "score-failed"
	StateNoRepository  = "no-repository"
	StateResolveFailed = "resolve-failed"
	StatePanicked      = "panicked"
)

// Result is one enriched dependency.
//
// Repository is nil when resolution failed or the registry has no
// repository. SecurityScore is nil when there was no repository, the score
// lookup failed, or the service has no score; these cases are deliberately
// not distinguished. Err is set only on the placeholder emitted for an item
// whose pipeline panicked.
type Result struct {
	Name          string
	Version       string
	Repository    *string
	SecurityScore *float64
	Err           error
}

// ItemError describes a lookup failure that was absorbed into a Result.
// It is only ever passed to Options.Logger.
type ItemError struct {
	Name  string // Dependency name
	Stage string // "resolve" or "score"
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Name, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Options configures an [Enricher].
type Options struct {
	Logger func(string, ...any) // Receives swallowed per-item failures (optional)
}

// Enricher runs the resolve-then-score pipeline over a dependency batch.
// It holds no per-batch state; one Enricher may run several batches,
// sequentially or concurrently.
type Enricher struct {
	resolver Resolver
	scorer   Scorer
	logf     func(string, ...any)
}

// New creates an Enricher. Both r and s must be safe for concurrent use.
func New(r Resolver, s Scorer, opts Options) *Enricher {
	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Enricher{resolver: r, scorer: s, logf: logf}
}

// Enrich resolves and scores every dependency in list concurrently and
// returns exactly one Result per input, in input order.
//
// Enrich never fails as a whole: lookup errors degrade the affected fields
// to nil and are reported to Options.Logger. Each item runs in its own
// goroutine; within an item the scoring call strictly follows resolution.
// Cancelling ctx aborts in-flight lookups, which then degrade like any other
// failure.
func (e *Enricher) Enrich(ctx context.Context, list []deps.Dependency) []Result {
	hooks := observability.Enrich()
	start := time.Now()
	hooks.OnEnrichStart(ctx, len(list))

	results := make([]Result, len(list))
	var wg sync.WaitGroup
	for i, d := range list {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = e.enrichOne(ctx, hooks, d)
		}()
	}
	wg.Wait()

	hooks.OnEnrichComplete(ctx, len(results), time.Since(start))
	return results
}

func (e *Enricher) enrichOne(ctx context.Context, hooks observability.EnrichHooks, d deps.Dependency) (res Result) {
	start := time.Now()
	var state string
	defer func() {
		if r := recover(); r != nil {
			err := errors.New(errors.ErrCodeBatchItem, "enrich %s: panic: %v", d.Name, r)
			e.logf("%v", err)
			res = Result{Name: d.Name, Version: d.Version, Err: err}
			state = StatePanicked
		}
		hooks.OnItemComplete(ctx, d.Name, state, time.Since(start))
	}()

	res = Result{Name: d.Name, Version: d.Version}

	ro := resolveOutcome(e.resolver.Resolve(ctx, d.Name))
	switch ro.Kind {
	case RepoFailed:
		e.report(d.Name, "resolve", ro.Err)
		state = StateResolveFailed
		return res
	case RepoNotFound:
		state = StateNoRepository
		return res
	case RepoFound:
		url := ro.URL
		res.Repository = &url
	}

	so := scoreOutcome(e.scorer.Score(ctx, ro.URL))
	switch so.Kind {
	case ScoreFailed:
		e.report(d.Name, "score", so.Err)
		state = StateScoreFailed
	case Unscored:
		state = StateUnscored
	case Scored:
		score := so.Score
		res.SecurityScore = &score
		state = StateScored
	}
	return res
}

func (e *Enricher) report(name, stage string, cause error) {
	e.logf("skipped: %v", &ItemError{Name: name, Stage: stage, Err: cause})
}
