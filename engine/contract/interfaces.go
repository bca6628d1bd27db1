package contract

import "context"

// RecommendationSink receives readiness snapshots. Implementations must not
// block the turn: the controller publishes and moves on.
type RecommendationSink interface {
	Publish(req RecommendationRequest)
}

// Generator turns a recommendation snapshot into prose. It lives outside
// the dialogue engine; the engine only signals readiness.
type Generator interface {
	Generate(ctx context.Context, req RecommendationRequest) (string, error)
}
