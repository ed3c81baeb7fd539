// Package generation runs the generative interview backends with layered
// fallbacks. Every operation is an ordered list of attempts ending in a
// deterministic stage, so callers always get a usable result: a failed or
// misbehaving model degrades quality, never availability.
package generation

import (
	"context"

	"github.com/rs/zerolog/log"
)

// attempt is one stage of a fallback chain. An attempt fails by returning
// an error or an empty result; the runner then moves to the next stage.
type attempt[T any] struct {
	name string
	run  func(ctx context.Context) (T, bool, error)
}

// runAttempts executes the stages in order and returns the first success.
// The final stage is expected to be infallible; if every stage fails the
// zero value and false are returned.
func runAttempts[T any](ctx context.Context, op string, attempts []attempt[T]) (T, bool) {
	for _, a := range attempts {
		result, ok, err := a.run(ctx)
		if err != nil {
			log.Warn().Err(err).Str("operation", op).Str("stage", a.name).
				Msg("generation stage failed, falling back")
			continue
		}
		if !ok {
			log.Debug().Str("operation", op).Str("stage", a.name).
				Msg("generation stage produced no result, falling back")
			continue
		}
		log.Debug().Str("operation", op).Str("stage", a.name).Msg("generation stage succeeded")
		return result, true
	}

	var zero T
	log.Warn().Str("operation", op).Msg("all generation stages failed")
	return zero, false
}
