package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
)

const defaultGenerateTimeout = 60 * time.Second

// AsyncSink runs the generator in the background so slot processing never
// waits on a model call. Generated text is handed to the deliver callback;
// failures are logged and dropped.
type AsyncSink struct {
	generator contractx.Generator
	deliver   func(text string, req contractx.RecommendationRequest)
	timeout   time.Duration
}

var _ contractx.RecommendationSink = (*AsyncSink)(nil)

type SinkOption func(*AsyncSink)

func WithGenerateTimeout(d time.Duration) SinkOption {
	return func(s *AsyncSink) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func NewAsyncSink(gen contractx.Generator, deliver func(string, contractx.RecommendationRequest), opts ...SinkOption) *AsyncSink {
	s := &AsyncSink{
		generator: gen,
		deliver:   deliver,
		timeout:   defaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AsyncSink) Publish(req contractx.RecommendationRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		text, err := s.generator.Generate(ctx, req)
		if err != nil {
			log.Error().
				Err(err).
				Str("kind", string(req.Kind)).
				Str("city", req.Slots.City).
				Msg("recommendation generation failed")
			return
		}

		if s.deliver != nil {
			s.deliver(text, req)
		}
	}()
}
