package cache

import (
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/aquasecurity/node-lifecycle/schedule"
	"github.com/aquasecurity/node-lifecycle/utils"
)

type entry struct {
	StoredAt time.Time         `json:"stored_at"`
	Schedule schedule.Schedule `json:"schedule"`
}

type option func(*Cache)

func WithAppFs(v afero.Fs) option {
	return func(c *Cache) { c.appFs = v }
}

func WithClock(v func() time.Time) option {
	return func(c *Cache) { c.clock = v }
}

// Cache stores normalized feed schedules as JSON files, one per feed name.
// Any failure is treated as a miss.
type Cache struct {
	dir   string
	ttl   time.Duration
	appFs afero.Fs
	clock func() time.Time
}

func New(dir string, ttl time.Duration, options ...option) *Cache {
	c := &Cache{
		dir:   dir,
		ttl:   ttl,
		appFs: afero.NewOsFs(),
		clock: time.Now,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Cache) path(name string) string {
	return filepath.Join(c.dir, name+".json")
}

// Get returns the schedule stored for the feed if it is younger than the TTL.
func (c *Cache) Get(name string) (schedule.Schedule, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	var e entry
	if err := utils.NewFs(c.appFs).ReadJSON(c.path(name), &e); err != nil {
		return nil, false
	}
	if e.Schedule == nil || e.StoredAt.IsZero() {
		return nil, false
	}

	age := c.clock().Sub(e.StoredAt)
	if age < 0 || age > c.ttl {
		return nil, false
	}
	return e.Schedule, true
}

// Set stores the schedule for the feed. Write errors are logged and ignored.
func (c *Cache) Set(name string, s schedule.Schedule) {
	e := entry{
		StoredAt: c.clock().UTC(),
		Schedule: s,
	}
	if err := utils.NewFs(c.appFs).WriteJSON(c.path(name), e); err != nil {
		log.Printf("Unable to cache %s schedule: %s", name, err)
	}
}
