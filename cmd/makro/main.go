package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/makro/pkg/config"
	"github.com/umputun/makro/pkg/content"
	"github.com/umputun/makro/pkg/feed"
	"github.com/umputun/makro/pkg/ingest"
	"github.com/umputun/makro/pkg/repository"
	"github.com/umputun/makro/pkg/scheduler"
	"github.com/umputun/makro/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DBPath string `long:"db" env:"DB" description:"database dsn, overrides config"`
	NoPoll bool   `long:"no-poll" env:"NO_POLL" description:"disable feed polling"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	lgr.Printf("[INFO] starting makro version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Printf("[INFO] shutdown complete")
}

// run wires storage, ingestion, feed polling and the http server, blocking until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	var extractor *content.HTTPExtractor
	ingester := ingest.NewService(repos.Content, nil)
	if cfg.Ingest.Extraction.Enabled {
		extractor = content.NewHTTPExtractor(cfg.Ingest.Extraction.Timeout, cfg.Ingest.Extraction.UserAgent)
		ingester = ingest.NewService(repos.Content, extractor)
		lgr.Printf("[INFO] content extraction enabled, timeout %v", cfg.Ingest.Extraction.Timeout)
	}

	var sched server.Scheduler // stays untyped nil when polling is off
	if !opts.NoPoll {
		s := newScheduler(cfg, repos, ingester, extractor)
		s.Start(ctx)
		defer s.Stop()
		sched = s
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), ingester, sched, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file if set, falling back to defaults, and applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.Config != "" {
		c, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = c
		lgr.Printf("[INFO] loaded config from %s", opts.Config)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DBPath != "" {
		cfg.Database.DSN = opts.DBPath
	}
	cfg.SetDefaults()
	return cfg, nil
}

// newScheduler builds the feed polling pipeline: parser with retries, parallel manager and ingester
func newScheduler(cfg *config.Config, repos *repository.Repositories, ingester *ingest.Service, extractor *content.HTTPExtractor) *scheduler.Scheduler {
	feeds := cfg.GetFeeds()
	if cfg.Schedule.Predefined {
		feeds = feed.Merge(feeds, feed.Predefined)
	}

	fetcher := feed.NewRetryFetcher(feed.NewParser(cfg.Schedule.Timeout, cfg.Ingest.Extraction.UserAgent), cfg.Schedule.Retries, time.Second)
	manager := feed.NewManager(fetcher, nil, cfg.Schedule.MaxWorkers)
	if extractor != nil {
		manager = feed.NewManager(fetcher, extractor, cfg.Schedule.MaxWorkers)
	}

	lgr.Printf("[INFO] polling %d configured feeds every %v", len(feeds), cfg.Schedule.UpdateInterval)
	return scheduler.NewScheduler(scheduler.Params{
		FeedStore:      repos.Feed,
		SettingStore:   repos.Setting,
		FeedManager:    manager,
		Ingester:       ingester,
		Feeds:          feeds,
		UpdateInterval: cfg.Schedule.UpdateInterval,
		MinRelevance:   cfg.Ingest.MinRelevance,
		Extract:        cfg.Ingest.Extraction.Enabled,
	})
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
