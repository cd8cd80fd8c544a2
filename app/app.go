// Package app wires the pieces every front end shares: settings, logging,
// content, audio and the host bridge.
package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/audio"
	"github.com/zucenko/portals/config"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/host"
	"github.com/zucenko/portals/server"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Settings config.Settings
	Library  *content.Library
	Bridge   *server.Bridge
	Logger   log.FieldLogger

	sound   *audio.SoundManager
	closers []io.Closer
}

// Boot loads settings from path (empty for defaults), applies the
// environment, sets up logging and loads content. Audio failures are logged
// and leave the game silent.
func Boot(path string, lookup func(string) (string, bool)) (*App, error) {
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return New(settings)
}

func New(settings config.Settings) (*App, error) {
	closer, err := config.SetupLogging(settings.Log)
	if err != nil {
		return nil, errors.Wrap(err, "setup logging")
	}
	a := &App{
		Settings: settings,
		Logger:   log.StandardLogger(),
		closers:  []io.Closer{closer},
	}

	a.Library = content.Default()
	if settings.Content != "" {
		if a.Library, err = content.LoadFile(settings.Content); err != nil {
			a.Close()
			return nil, err
		}
		a.Logger.WithField("file", settings.Content).Info("content loaded")
	}

	if settings.Audio.Enabled {
		sm := audio.NewSoundManager(settings.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			a.Logger.WithError(err).Warn("audio disabled")
		} else {
			a.sound = sm
		}
	}
	if settings.Bridge.Enabled {
		a.Bridge = server.NewBridge(a.Library, a.Logger)
	}
	return a, nil
}

// SessionOptions fills the session options from the app. Callers set the
// front end specific fields.
func (a *App) SessionOptions() host.Options {
	opts := host.Options{
		Title:             a.Settings.Window.Title,
		Library:           a.Library,
		Logger:            a.Logger,
		SecretCodeTimeout: a.Settings.SecretCodeTimeout,
	}
	if a.sound != nil {
		opts.Sound = a.sound
	}
	if a.Bridge != nil {
		opts.Bridge = a.Bridge
	}
	return opts
}

// Run calls loop on the calling goroutine while the bridge, if enabled, runs
// in the background. A bridge failure cancels the context given to loop;
// loop returning stops the bridge.
func (a *App) Run(ctx context.Context, loop func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if a.Bridge != nil {
		g.Go(func() error {
			return a.Bridge.Run(gctx, a.Settings.Bridge.Addr)
		})
	}
	err := loop(gctx)
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

func (a *App) Close() {
	if a.sound != nil {
		a.sound.Cleanup()
		a.sound = nil
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.Logger.WithError(err).Warn("close")
		}
	}
	a.closers = nil
}
