// Command server runs the portal room without a display. Clients drive it
// through the bridge websocket and read its state over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/app"
	"github.com/zucenko/portals/host"
	"github.com/zucenko/portals/server"
)

const tickRate = 60

type Server struct {
	session *host.Session
	bridge  *server.Bridge
	tick    time.Duration
}

func NewServer(session *host.Session, bridge *server.Bridge) *Server {
	return &Server{
		session: session,
		bridge:  bridge,
		tick:    time.Second / tickRate,
	}
}

// Loop applies bridge commands and advances the session until ctx is done.
func (s *Server) Loop(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Step()
		}
	}
}

func (s *Server) Step() {
	s.bridge.Drain(s.session.Command)
	s.session.Tick(float32(s.tick.Seconds()))
}

func main() {
	configPath := flag.String("config", "", "settings file (YAML)")
	flag.Parse()

	a, err := app.Boot(*configPath, func(k string) (string, bool) {
		// the headless host always serves the bridge and never plays sound
		switch k {
		case "PORTALS_BRIDGE":
			return "true", true
		case "PORTALS_AUDIO":
			return "false", true
		}
		return os.LookupEnv(k)
	})
	if err != nil {
		log.WithError(err).Fatal("startup")
	}
	defer a.Close()

	session := host.NewSession(nil, a.SessionOptions())
	defer session.Close()
	if a.Settings.AutoStart {
		session.EnterGame()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.Run(ctx, NewServer(session, a.Bridge).Loop); err != nil {
		log.WithError(err).Error("exited")
	}
}
