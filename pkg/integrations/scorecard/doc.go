// Package scorecard provides an HTTP client for the OpenSSF Scorecard API
// (https://api.securityscorecards.dev).
//
// The scorecard service publishes an automated security-posture score
// (0-10) for public source repositories. Projects are addressed by bare
// host and path, so repository URLs are passed through [ProjectPath]
// before the request is built:
//
//	client := scorecard.NewClient(hc)
//	score, err := client.Score(ctx, "https://github.com/serde-rs/serde")
//	// GET https://api.securityscorecards.dev/projects/github.com/serde-rs/serde
//
// A nil score with a nil error means the service answered but holds no
// score for the repository.
package scorecard
