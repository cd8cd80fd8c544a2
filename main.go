// Command portals runs the portal room in a desktop window.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/app"
	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/host"
)

func main() {
	configPath := flag.String("config", "", "settings file (YAML)")
	flag.Parse()

	a, err := app.Boot(*configPath, os.LookupEnv)
	if err != nil {
		log.WithError(err).Fatal("startup")
	}
	defer a.Close()

	err = a.Run(context.Background(), func(ctx context.Context) error {
		surface := NewSurface(engine.ScreenWidth, engine.ScreenHeight)
		defer surface.Dispose()
		session := host.NewSession(surface, a.SessionOptions())
		defer session.Close()
		if a.Settings.AutoStart {
			session.EnterGame()
		}

		w := a.Settings.Window
		ebiten.SetWindowTitle(w.Title)
		ebiten.SetWindowSize(int(engine.ScreenWidth*w.Scale), int(engine.ScreenHeight*w.Scale))
		ebiten.SetFullscreen(w.Fullscreen)
		return ebiten.RunGame(NewGame(ctx, session, surface, a.Bridge))
	})
	if err != nil {
		log.WithError(err).Error("exited")
		a.Close()
		os.Exit(1)
	}
}
