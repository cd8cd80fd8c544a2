// Command portals-term runs the portal room in a terminal.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/app"
	"github.com/zucenko/portals/config"
	"github.com/zucenko/portals/engine"
	"github.com/zucenko/portals/host"
	"github.com/zucenko/portals/render"
)

// defaultLogFile keeps log output off the screen.
const defaultLogFile = "portals-term.log"

func main() {
	configPath := flag.String("config", "", "settings file (YAML)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("settings")
	}
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		log.WithError(err).Fatal("settings")
	}
	if settings.Log.File == "" {
		settings.Log.File = defaultLogFile
	}
	a, err := app.New(settings)
	if err != nil {
		log.WithError(err).Fatal("startup")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("terminal")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("terminal")
	}
	screen.HideCursor()
	screen.EnableMouse()

	canvas := render.NewCanvas(engine.ScreenWidth, engine.ScreenHeight)
	session := host.NewSession(canvas, a.SessionOptions())
	if settings.AutoStart {
		session.EnterGame()
	}
	t := NewTerminal(screen, session, canvas, settings.Term.FPS, settings.Term.KeyHold)
	t.bridge = a.Bridge

	err = a.Run(context.Background(), t.Run)
	session.Close()
	canvas.Dispose()
	screen.Fini()
	a.Close()
	if err != nil {
		log.WithError(err).Error("exited")
		os.Exit(1)
	}
}
