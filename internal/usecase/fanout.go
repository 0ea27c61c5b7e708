package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// searchUnit is one independent unit of a search fan-out. Units write their
// result into a slot they exclusively own, so no locking is needed on the
// result side.
type searchUnit func(ctx context.Context) error

// fanOut runs the units with bounded concurrency. A unit that fails or panics
// contributes nothing to the batch and the remaining units keep running; only
// context cancellation aborts the whole batch. This makes partial inventory
// outages degrade results instead of failing the request.
func (uc *planningUseCase) fanOut(ctx context.Context, units []searchUnit) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrent)

	for _, unit := range units {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					uc.log.Error().
						Interface("panic", r).
						Msg("search unit panicked, treating as no availability")
					err = nil
				}
			}()

			uerr := unit(gctx)
			if uerr == nil {
				return nil
			}
			if errors.Is(uerr, context.Canceled) || errors.Is(uerr, context.DeadlineExceeded) {
				return uerr
			}
			uc.log.Warn().
				Err(uerr).
				Msg("search unit failed, treating as no availability")
			return nil
		})
	}

	return g.Wait()
}
