package main

import (
	"context"
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

	"github.com/cryptodigest/cryptodigest/pkg/auth"
	"github.com/cryptodigest/cryptodigest/pkg/config"
	"github.com/cryptodigest/cryptodigest/pkg/llm"
	"github.com/cryptodigest/cryptodigest/pkg/repository"
	"github.com/cryptodigest/cryptodigest/pkg/scheduler"
	"github.com/cryptodigest/cryptodigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
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

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config from %s: %v", opts.Config, err)
		os.Exit(1)
	}

	// register sensitive values so they never show up in logs
	var secrets []string
	for _, s := range []string{cfg.Auth.JWTSecret, cfg.LLM.APIKey, cfg.Auth.AdminPassword} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	setupLog(opts.Debug, secrets...)

	log.Printf("[INFO] starting cryptodigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	// seed default sources and streams, no-op on subsequent starts
	if err := repos.Source.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed news sources: %w", err)
	}
	if err := repos.Stream.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed live streams: %w", err)
	}

	generator := llm.NewGenerator(cfg.GetLLMConfig())

	sched := scheduler.NewScheduler(scheduler.Params{
		Sources:      repos.Source,
		Articles:     repos.Article,
		Generator:    generator,
		Interval:     time.Duration(cfg.Schedule.GenerateInterval) * time.Minute,
		PollTick:     time.Duration(cfg.Schedule.PollTick) * time.Second,
		TriggerQueue: cfg.Schedule.TriggerQueue,
	})
	sched.Start(ctx)
	defer sched.Stop()

	authCfg := cfg.GetAuthConfig()
	authSvc := auth.NewService(authCfg.JWTSecret, authCfg.TokenTTL,
		auth.NewStaticCredentials(authCfg.AdminUsername, authCfg.AdminPassword))

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), sched, authSvc,
		server.NewStaticMarketProvider(), revision, debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
