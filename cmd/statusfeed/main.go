package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/statusfeed/internal/bar"
	"codeberg.org/mutker/statusfeed/internal/config"
	"codeberg.org/mutker/statusfeed/internal/errors"
	"codeberg.org/mutker/statusfeed/internal/logger"
	"codeberg.org/mutker/statusfeed/internal/metrics"
	"codeberg.org/mutker/statusfeed/internal/pid"
	"codeberg.org/mutker/statusfeed/internal/source"
	"codeberg.org/mutker/statusfeed/internal/status"
	"github.com/spf13/pflag"
)

type app struct {
	cfg       *config.Config
	sources   *source.Set
	palette   *status.Palette
	layout    bar.Layout
	emitter   bar.Emitter
	collector metrics.Collector
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(config.WithArgs(args))
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if cfg.PIDFile != "" {
		if err := pid.Write(cfg.PIDFile); err != nil {
			logger.ErrorWithCode(asError(err)).Msg("failed to write PID file")
			return 1
		}
		defer func() {
			if err := pid.Remove(cfg.PIDFile); err != nil {
				logger.Error().Err(err).Msg("failed to remove PID file")
			}
		}()
	}

	a, err := newApp(cfg)
	if err != nil {
		logger.ErrorWithCode(asError(err)).Msg("failed to initialize")
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	code := 0
	if err := a.loop(ctx); err != nil {
		logger.ErrorWithCode(asError(err)).Msg("error in main loop")
		code = 1
	}
	a.cleanup()

	return code
}

func newApp(cfg *config.Config) (*app, error) {
	collector, err := metrics.NewService(metrics.Config{
		DBPath:       cfg.MetricsDB,
		Enabled:      cfg.Metrics,
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
	}, logger.Default())
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrInitMetrics, err)
	}

	var emitter bar.Emitter = bar.NewI3Bar(os.Stdout)
	if cfg.Preview {
		emitter = bar.NewPreview(os.Stdout)
	}

	return &app{
		cfg:       cfg,
		sources:   source.New(cfg),
		palette:   paletteFrom(cfg.Colors),
		layout:    bar.Layout{WifiDevice: cfg.WifiDevice, EthernetDevice: cfg.EthernetDevice},
		emitter:   emitter,
		collector: collector,
	}, nil
}

// loop emits one cycle immediately and then one per tick until ctx is
// canceled or the bar host stops reading.
func (a *app) loop(ctx context.Context) error {
	if err := a.emitter.Start(); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Duration(a.cfg.Interval) * time.Second)
	defer ticker.Stop()

	logger.Info().
		Int("interval", a.cfg.Interval).
		Str("backend", a.cfg.Backend).
		Str("session", a.collector.Session()).
		Msg("Emitting status")

	for {
		if err := a.cycle(ctx, time.Now()); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// cycle fetches, classifies and emits one status line. Only an output
// error is returned; every source failure ends up as an error block.
func (a *app) cycle(ctx context.Context, now time.Time) error {
	readings := bar.Parse(bar.Snapshot{Time: now, Results: a.sources.FetchAll(ctx)})
	blocks := bar.Assemble(a.palette, a.layout, readings, now)

	if err := a.emitter.Emit(blocks); err != nil {
		return err
	}

	if err := a.collector.Record(ctx, newSample(now, readings, blocks)); err != nil {
		logger.Warn().Err(err).Msg("failed to record sample")
	}

	return nil
}

func handleSignals(cancel context.CancelFunc) {
	// A closed bar pipe then surfaces as a write error instead of killing
	// the process before cleanup.
	signal.Ignore(syscall.SIGPIPE)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func (a *app) cleanup() {
	if err := a.collector.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close metrics")
	}
	logger.Info().Msg("Exiting...")
}

func paletteFrom(c config.Colors) *status.Palette {
	pair := func(p config.ColorPair) status.Colors {
		return status.Colors{Foreground: p.Foreground, Background: p.Background}
	}
	return &status.Palette{
		Normal: pair(c.Normal),
		Warn:   pair(c.Warn),
		Danger: pair(c.Danger),
		Set:    pair(c.Set),
	}
}

func asError(err error) errors.Error {
	var e errors.Error
	if errors.As(err, &e) {
		return e
	}
	return errors.New().Wrap(errors.ErrInternal, err)
}
