package repository

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/node-lifecycle/cache"
	"github.com/aquasecurity/node-lifecycle/config"
	"github.com/aquasecurity/node-lifecycle/feed"
	"github.com/aquasecurity/node-lifecycle/schedule"
)

// Source supplies a partial schedule. The feed package provides the WG and
// endoflife.date implementations.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (schedule.Schedule, error)
}

// Cache keeps fetched schedules by source name.
type Cache interface {
	Get(name string) (schedule.Schedule, bool)
	Set(name string, s schedule.Schedule)
}

type option func(*Repository)

func WithPrimary(v Source) option {
	return func(r *Repository) { r.primary = v }
}

func WithSecondary(v Source) option {
	return func(r *Repository) { r.secondary = v }
}

func WithCache(v Cache) option {
	return func(r *Repository) { r.cache = v }
}

// Repository assembles the release schedule from a primary and a secondary feed.
type Repository struct {
	primary   Source
	secondary Source
	cache     Cache
}

func New(conf config.Config, options ...option) *Repository {
	r := &Repository{
		primary:   feed.NewWG(),
		secondary: feed.NewEndOfLife(),
		cache:     cache.New(conf.CacheDir, conf.CacheTTL),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Schedule fetches both feeds concurrently and merges them, the primary taking precedence.
// A feed that cannot be fetched is skipped. If both fail, the schedule is empty.
func (r *Repository) Schedule(ctx context.Context) schedule.Schedule {
	var (
		g                        errgroup.Group
		primary, secondary       schedule.Schedule
		primaryErr, secondaryErr error
	)
	g.Go(func() error {
		primary, primaryErr = r.load(ctx, r.primary)
		return primaryErr
	})
	g.Go(func() error {
		secondary, secondaryErr = r.load(ctx, r.secondary)
		return secondaryErr
	})
	_ = g.Wait()

	switch {
	case primaryErr == nil && secondaryErr == nil:
		return schedule.Merge(primary, secondary)
	case primaryErr == nil:
		log.Printf("Using the %s schedule only: %s", r.primary.Name(), secondaryErr)
		return primary
	case secondaryErr == nil:
		log.Printf("Using the %s schedule only: %s", r.secondary.Name(), primaryErr)
		return secondary
	default:
		log.Printf("No schedule available: %s; %s", primaryErr, secondaryErr)
		return schedule.Schedule{}
	}
}

func (r *Repository) load(ctx context.Context, src Source) (schedule.Schedule, error) {
	if s, ok := r.cache.Get(src.Name()); ok {
		return s, nil
	}

	start := time.Now()
	s, err := src.Fetch(ctx)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", src.Name(), err)
	}
	log.Printf("Fetched %d release lines from %s in %s", len(s), src.Name(), time.Since(start).Round(time.Millisecond))

	r.cache.Set(src.Name(), s)
	return s, nil
}
