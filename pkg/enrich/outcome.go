package enrich

import "context"

// Resolver maps a crate name to its source repository URL.
// A nil URL with a nil error means the registry has no repository metadata.
type Resolver interface {
	Resolve(ctx context.Context, name string) (*string, error)
}

// Scorer maps a repository URL to its security score.
// A nil score with a nil error means the service has no score.
type Scorer interface {
	Score(ctx context.Context, repoURL string) (*float64, error)
}

// ResolveKind discriminates a [ResolveOutcome].
type ResolveKind int

const (
	// RepoFound means the registry returned a repository URL.
	RepoFound ResolveKind = iota
	// RepoNotFound means the lookup succeeded but no repository is recorded.
	RepoNotFound
	// RepoFailed means the lookup failed.
	RepoFailed
)

// ResolveOutcome is the result of the repository resolution step.
// URL is set only for RepoFound; Err only for RepoFailed.
type ResolveOutcome struct {
	Kind ResolveKind
	URL  string
	Err  error
}

func resolveOutcome(url *string, err error) ResolveOutcome {
	switch {
	case err != nil:
		return ResolveOutcome{Kind: RepoFailed, Err: err}
	case url == nil:
		return ResolveOutcome{Kind: RepoNotFound}
	default:
		return ResolveOutcome{Kind: RepoFound, URL: *url}
	}
}

// ScoreKind discriminates a [ScoreOutcome].
type ScoreKind int

const (
	// Scored means the service returned a numeric score.
	Scored ScoreKind = iota
	// Unscored means the lookup succeeded but the service has no score.
	Unscored
	// ScoreFailed means the lookup failed.
	ScoreFailed
)

// ScoreOutcome is the result of the scoring step.
// Score is meaningful only for Scored; Err only for ScoreFailed.
type ScoreOutcome struct {
	Kind  ScoreKind
	Score float64
	Err   error
}

func scoreOutcome(score *float64, err error) ScoreOutcome {
	switch {
	case err != nil:
		return ScoreOutcome{Kind: ScoreFailed, Err: err}
	case score == nil:
		return ScoreOutcome{Kind: Unscored}
	default:
		return ScoreOutcome{Kind: Scored, Score: *score}
	}
}
