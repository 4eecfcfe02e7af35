package service

import (
	"time"

	"learnboard/internal/domain"

	"golang.org/x/sync/errgroup"
)

// Clock returns the current time in the location used for calendar dates.
type Clock func() time.Time

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

// goFetch runs fetch on g and stores its result in dst. A failure is wrapped as a
// fetch error naming source; the group then cancels the sibling fetches.
func goFetch[T any](g *errgroup.Group, source string, dst *T, fetch func() (T, error)) {
	g.Go(func() error {
		v, err := fetch()
		if err != nil {
			return domain.NewFetchError(source, err)
		}
		*dst = v
		return nil
	})
}
