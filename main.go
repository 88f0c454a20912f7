package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	"github.com/aquasecurity/node-lifecycle/classify"
	"github.com/aquasecurity/node-lifecycle/config"
	"github.com/aquasecurity/node-lifecycle/feed"
	"github.com/aquasecurity/node-lifecycle/report"
	"github.com/aquasecurity/node-lifecycle/repository"
	"github.com/aquasecurity/node-lifecycle/utils"
)

const usage = `Usage: node-lifecycle [-warn-days=N] [-version=X.Y.Z] [-cache-ttl=SECS] [-no-fail]

Checks the Node.js version lifecycle (current/LTS/maintenance/EOL).

Flags:
`

const exitUsage = 2

type options struct {
	version      string
	warnDays     int
	cacheTTL     string
	cacheDir     string
	configFile   string
	noFail       bool
	debug        bool
	primaryURL   string
	secondaryURL string
	retry        int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if xerrors.Is(err, flag.ErrHelp) {
		return report.ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log.SetFlags(0)
	log.SetPrefix("node-lifecycle: ")
	log.SetOutput(io.Discard)
	if opts.debug {
		log.SetOutput(stderr)
	}

	conf, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	runtime := opts.version
	if runtime == "" {
		runtime = nodeVersion()
	}

	repo := repository.New(conf,
		repository.WithPrimary(feed.NewWG(feed.WithURL(opts.primaryURL), feed.WithRetry(opts.retry))),
		repository.WithSecondary(feed.NewEndOfLife(feed.WithURL(opts.secondaryURL), feed.WithRetry(opts.retry))),
	)
	s := repo.Schedule(context.Background())

	now := time.Now()
	c := classify.Classify(runtime, s, now)
	verdict := report.Evaluate(runtime, c, s, now, report.Options{
		WarnDays: opts.warnDays,
		NoFail:   opts.noFail,
	})

	out := stdout
	if verdict.Level != report.LevelOK {
		out = stderr
	}
	for _, line := range verdict.Lines {
		fmt.Fprintln(out, line)
	}
	return verdict.ExitCode
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("node-lifecycle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
		fmt.Fprint(stderr, "\nExit codes:\n  0 = OK (supported)\n  1 = Warning (within warn-days of EOL, or unknown)\n  2 = EOL (unless -no-fail, then 0)\n")
	}

	fs.StringVar(&opts.version, "version", "", "check this specific version (default: output of `node --version`)")
	fs.IntVar(&opts.warnDays, "warn-days", report.DefaultWarnDays, "warn (exit 1) if EOL is within N days")
	fs.StringVar(&opts.cacheTTL, "cache-ttl", "", "schedule cache TTL in seconds (default: 86400)")
	fs.StringVar(&opts.cacheDir, "cache-dir", "", "schedule cache directory")
	fs.StringVar(&opts.configFile, "config", "", "YAML config file with cache_ttl and cache_dir")
	fs.BoolVar(&opts.noFail, "no-fail", false, "do not fail (exit 2) on EOL")
	fs.BoolVar(&opts.debug, "debug", false, "log feed and cache activity to stderr")
	fs.StringVar(&opts.primaryURL, "primary-url", feed.WGURL, "Node.js Release WG schedule URL")
	fs.StringVar(&opts.secondaryURL, "secondary-url", feed.EndOfLifeURL, "endoflife.date Node.js URL")
	fs.IntVar(&opts.retry, "retry", 2, "number of retries per feed")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.warnDays < 0 {
		return options{}, xerrors.Errorf("invalid -warn-days value: %d", opts.warnDays)
	}
	if opts.retry < 0 {
		return options{}, xerrors.Errorf("invalid -retry value: %d", opts.retry)
	}
	return opts, nil
}

// loadConfig layers the config file, the environment and the flags, in that order.
func loadConfig(opts options) (config.Config, error) {
	var configOpts []config.Option

	if ttl := utils.LookupEnv("NODE_EOL_CACHE_TTL", ""); ttl != "" {
		ms, err := strconv.ParseInt(ttl, 10, 64)
		if err != nil || ms < 0 {
			return config.Config{}, xerrors.Errorf("invalid NODE_EOL_CACHE_TTL value: %s", ttl)
		}
		configOpts = append(configOpts, config.WithCacheTTL(time.Duration(ms)*time.Millisecond))
	}
	configOpts = append(configOpts, config.WithCacheDir(utils.LookupEnv("NODE_EOL_CACHE_DIR", "")))

	if opts.cacheTTL != "" {
		secs, err := strconv.ParseFloat(opts.cacheTTL, 64)
		if err != nil || secs < 0 {
			return config.Config{}, xerrors.Errorf("invalid -cache-ttl value: %s", opts.cacheTTL)
		}
		configOpts = append(configOpts, config.WithCacheTTL(time.Duration(secs*float64(time.Second))))
	}
	configOpts = append(configOpts, config.WithCacheDir(opts.cacheDir))

	if opts.configFile == "" {
		return config.New(configOpts...), nil
	}
	conf, err := config.Load(opts.configFile, configOpts...)
	if err != nil {
		return config.Config{}, xerrors.Errorf("config error: %w", err)
	}
	return conf, nil
}

func nodeVersion() string {
	v, err := utils.Exec("node", []string{"--version"})
	if err != nil {
		log.Printf("Unable to detect the Node.js version: %s", err)
		return ""
	}
	return v
}
