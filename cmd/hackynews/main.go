package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/hackynews/hackynews/pkg/classifier"
	"github.com/hackynews/hackynews/pkg/config"
	"github.com/hackynews/hackynews/pkg/hn"
	"github.com/hackynews/hackynews/pkg/ingest"
	"github.com/hackynews/hackynews/pkg/llm"
	"github.com/hackynews/hackynews/pkg/repository"
	"github.com/hackynews/hackynews/pkg/scheduler"
	"github.com/hackynews/hackynews/pkg/zeroshot"
	"github.com/hackynews/hackynews/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`
	Once   bool   `long:"once" description:"run a single sync and exit"`
	Limit  int    `long:"limit" description:"items for --once sync, sync.limit from config if not set"`

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
	SetupLog(opts.Debug)
	log.Printf("[INFO] starting hackynews version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called explicitly
	}
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// re-setup log with secrets masked
	SetupLog(opts.Debug, cfg.LLM.APIKey, cfg.ZeroShot.Token)

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
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	svc := classifier.New(makeFallback(cfg))
	syncer := ingest.New(ingest.Params{
		Fetcher:       hn.New(cfg.Source),
		Classifier:    svc,
		Store:         repos.Item,
		Recorder:      repos.Setting,
		ThrottleEvery: cfg.Sync.ThrottleEvery,
		ThrottleDelay: cfg.Sync.ThrottleDelay,
	})

	if opts.Once {
		limit := cfg.Sync.Limit
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		res, err := syncer.Sync(ctx, limit)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		log.Printf("[INFO] stored %d of %d items in %v", res.Stored, res.Requested, res.Duration.Round(time.Millisecond))
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Sync.Enabled {
		sched, err := scheduler.NewScheduler(scheduler.Params{Syncer: syncer, Schedule: cfg.Sync.Schedule, Limit: cfg.Sync.Limit})
		if err != nil {
			return fmt.Errorf("failed to make scheduler: %w", err)
		}
		sched.Start(ctx)
		g.Go(func() error {
			<-ctx.Done()
			sched.Stop()
			return nil
		})
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), syncer, svc, revision, opts.Debug)
	g.Go(func() error {
		return srv.Run(ctx)
	})

	return g.Wait()
}

// loadConfig reads config file if set, applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	return cfg, nil
}

// makeFallback builds the fallback classifier for configured backend, nil means rules only
func makeFallback(cfg *config.Config) classifier.FallbackClassifier {
	switch cfg.Classifier.Backend {
	case config.BackendLLM:
		log.Printf("[INFO] fallback classifier: llm %s at %s", cfg.LLM.Model, cfg.LLM.Endpoint)
		return classifier.NewFallback(llm.NewZeroShot(cfg.LLM), cfg.Classifier.Timeout)
	case config.BackendZeroShot:
		log.Printf("[INFO] fallback classifier: zero-shot at %s", cfg.ZeroShot.Endpoint)
		return classifier.NewFallback(zeroshot.New(cfg.ZeroShot), cfg.Classifier.Timeout)
	default:
		log.Printf("[INFO] fallback classifier disabled, rules only")
		return nil
	}
}

// SetupLog configures lgr and routes std log through it
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
