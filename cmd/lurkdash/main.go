package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/lurkdash/audio"
	"github.com/lixenwraith/lurkdash/config"
	"github.com/lixenwraith/lurkdash/core"
	"github.com/lixenwraith/lurkdash/game"
	"github.com/lixenwraith/lurkdash/render"
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var configFlag = flag.String("config", "", "Config file (default $LURKDASH_CONFIG or "+config.DefaultPath+")")

func main() {
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "lurkdash: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if _, err := config.LoadEnv(); err != nil {
		return err
	}
	path := config.ResolvePath(configPath)
	cfg, err := config.Read(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger, logFile := setupLogging(cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	backend, err := terminal.NewScreenBackend()
	if err != nil {
		return core.NewError(core.KindBackendInit, "open terminal", err)
	}
	session, err := terminal.NewSession(backend, logger)
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer session.Close()

	// Crashes on any goroutine restore the terminal before printing the trace
	core.SetCrashRestore(func() { _ = session.Close() })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	state := game.NewState(game.DemoSnapshot())

	notifier := audio.NewNotifier(cfg.Audio, logger.WithField("component", "audio"))
	if err := notifier.Initialize(); err != nil {
		logger.WithError(err).Warn("audio initialization failed, continuing without audio")
	}
	defer notifier.Cleanup()

	theme := render.ThemeFromConfig(cfg.Theme)
	composer := render.NewComposer(session, state, render.Options{
		FeedWindow: cfg.Display.FeedWindow,
		Theme:      &theme,
		Observer:   func(fi render.FrameInfo) { notifier.Observe(fi.MessagesTotal) },
		Logger:     logger.WithField("component", "render"),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan terminal.Event, 64)
	g.Go(core.Guard(func() error {
		return pollInput(gctx, session, events)
	}))
	g.Go(core.Guard(func() error {
		err := config.Watch(gctx, path, logger, func(c *config.Config) {
			composer.SetTheme(render.ThemeFromConfig(c.Theme))
		})
		if err != nil {
			logger.WithError(err).Warn("config hot reload disabled")
		}
		return nil
	}))
	if cfg.Demo.Simulate {
		sim := game.NewSimulator(state, nil)
		g.Go(core.Guard(func() error {
			return sim.Run(gctx, cfg.Demo.Interval.Duration)
		}))
	}

	logger.WithFields(logrus.Fields{
		"session": session.ID(),
		"config":  path,
	}).Info("dashboard started")

	loopErr := loop(gctx, composer, events, cfg.Display.FrameInterval.Duration, logger)

	// Finalizing the session unblocks the input poller
	cancel()
	closeErr := session.Close()
	waitErr := g.Wait()

	if loopErr != nil {
		logger.WithError(loopErr).Error("render failed")
		return loopErr
	}
	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return waitErr
	}
	return closeErr
}

// renderer is the frame producer driven by loop
type renderer interface {
	Render() error
}

// loop renders once up front, then after every input event, resize and tick
// Returns nil when 'q' is pressed or ctx ends; any render error stops the loop
func loop(ctx context.Context, r renderer, events <-chan terminal.Event, interval time.Duration, log logrus.FieldLogger) error {
	if err := r.Render(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev.Type {
			case terminal.EventKey:
				if ev.IsRune('q') {
					return nil
				}
				log.WithField("rune", string(ev.Rune)).Debug("key ignored")
			case terminal.EventError:
				log.WithError(ev.Err).Warn("input error")
			}
		case <-ticker.C:
		}

		if err := r.Render(); err != nil {
			return err
		}
	}
}

// pollInput forwards device events until the session is closed or ctx ends
func pollInput(ctx context.Context, s *terminal.Session, out chan<- terminal.Event) error {
	for {
		ev := s.PollEvent()
		if ev.Type == terminal.EventClosed {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}
