package feed

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/aquasecurity/node-lifecycle/schedule"
	"github.com/aquasecurity/node-lifecycle/utils"
)

const (
	WGURL        = "https://raw.githubusercontent.com/nodejs/Release/HEAD/schedule.json"
	EndOfLifeURL = "https://endoflife.date/api/nodejs.json"

	WGName        = "schedule.wg"
	EndOfLifeName = "schedule.eol"

	retry = 2
)

type Config struct {
	url   string
	retry int
}

type option func(*Config)

func WithURL(url string) option {
	return func(c *Config) {
		if url != "" {
			c.url = url
		}
	}
}

func WithRetry(retry int) option {
	return func(c *Config) {
		c.retry = retry
	}
}

func newConfig(url string, opts ...option) Config {
	c := Config{
		url:   url,
		retry: retry,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) fetch(ctx context.Context, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return xerrors.Errorf("fetch canceled: %w", err)
	}

	log.Printf("Fetching %s", c.url)
	b, err := utils.FetchURL(c.url, c.retry)
	if err != nil {
		return xerrors.Errorf("unable to fetch %s: %w", c.url, err)
	}
	if err = json.Unmarshal(b, v); err != nil {
		return xerrors.Errorf("unable to parse JSON from %s: %w", c.url, err)
	}
	return nil
}

// WG fetches the schedule published by the Node.js Release working group.
// It is the only feed with LTS and maintenance dates.
type WG struct {
	Config
}

func NewWG(opts ...option) WG {
	return WG{Config: newConfig(WGURL, opts...)}
}

func (WG) Name() string { return WGName }

func (w WG) Fetch(ctx context.Context) (schedule.Schedule, error) {
	var entries map[string]WGEntry
	if err := w.fetch(ctx, &entries); err != nil {
		return nil, xerrors.Errorf("failed to fetch the WG schedule: %w", err)
	}
	return NormalizeWG(entries), nil
}

// EndOfLife fetches end-of-life dates from endoflife.date.
type EndOfLife struct {
	Config
}

func NewEndOfLife(opts ...option) EndOfLife {
	return EndOfLife{Config: newConfig(EndOfLifeURL, opts...)}
}

func (EndOfLife) Name() string { return EndOfLifeName }

func (e EndOfLife) Fetch(ctx context.Context) (schedule.Schedule, error) {
	var entries []EOLEntry
	if err := e.fetch(ctx, &entries); err != nil {
		return nil, xerrors.Errorf("failed to fetch endoflife.date cycles: %w", err)
	}
	return NormalizeEndOfLife(entries), nil
}

// NormalizeWG keys the WG schedule by major version. Keys such as "v20" and "20" are
// accepted. Pre-1.0 lines like "v0.12" and lines without a usable end date are dropped.
func NormalizeWG(entries map[string]WGEntry) schedule.Schedule {
	out := schedule.Schedule{}
	for key, e := range entries {
		major, ok := parseMajor(strings.TrimPrefix(key, "v"))
		if !ok {
			continue
		}
		if _, ok = schedule.ParseDate(e.End); !ok {
			continue
		}
		out[major] = schedule.Release{
			Start:       e.Start,
			LTS:         e.LTS,
			Maintenance: e.Maintenance,
			End:         e.End,
			Codename:    e.Codename,
		}
	}
	return out
}

// NormalizeEndOfLife keys endoflife.date cycles by major version.
// Only the end-of-life date, release date and codename are kept. Cycles without
// an integer identifier or an end-of-life date are dropped.
func NormalizeEndOfLife(entries []EOLEntry) schedule.Schedule {
	out := schedule.Schedule{}
	for _, e := range entries {
		major, ok := parseMajor(string(e.Cycle))
		if !ok {
			continue
		}
		end := string(e.EOL)
		if _, ok = schedule.ParseDate(end); !ok {
			continue
		}
		out[major] = schedule.Release{
			Start:    string(e.ReleaseDate),
			End:      end,
			Codename: string(e.Codename),
		}
	}
	return out
}

func parseMajor(s string) (int, bool) {
	major, err := strconv.Atoi(s)
	if err != nil || major < 0 {
		return 0, false
	}
	return major, true
}
