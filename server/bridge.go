// Package server is the host bridge: it publishes engine events to websocket
// clients, serves portal content over HTTP and queues client commands for the
// game loop.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/model"
	"golang.org/x/sync/errgroup"
)

const (
	commandBuffer = 64
	eventBuffer   = 64
	clientBuffer  = 16

	handoffTimeout  = 200 * time.Millisecond
	shutdownTimeout = 2 * time.Second
)

// Bridge connects bridge clients to a host. Loop must run for websocket
// clients to be served; Publish, SetSnapshot and Drain are safe from any
// goroutine.
type Bridge struct {
	Upgrader *websocket.Upgrader
	Metrics  *Metrics

	library *content.Library
	logger  log.FieldLogger
	router  *way.Router

	commands   chan model.Command
	events     chan model.Event
	register   chan *ClientSession
	unregister chan *ClientSession

	mu       sync.RWMutex
	snapshot model.Snapshot
}

func NewBridge(lib *content.Library, logger log.FieldLogger) *Bridge {
	if logger == nil {
		logger = log.StandardLogger()
	}
	b := &Bridge{
		Upgrader: &websocket.Upgrader{
			// the bridge serves local tooling; any origin may connect
			CheckOrigin: func(*http.Request) bool { return true },
		},
		Metrics:    &Metrics{},
		library:    lib,
		logger:     logger.WithField("component", "bridge"),
		commands:   make(chan model.Command, commandBuffer),
		events:     make(chan model.Event, eventBuffer),
		register:   make(chan *ClientSession),
		unregister: make(chan *ClientSession),
	}
	b.routes()
	return b
}

func (b *Bridge) Handler() http.Handler {
	return b.router
}

// Run serves HTTP on addr and runs Loop until ctx is done.
func (b *Bridge) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: b.router}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.Loop(ctx)
		return nil
	})
	g.Go(func() error {
		b.logger.WithField("addr", addr).Info("bridge listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrapf(err, "bridge listen %s", addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

// Loop owns the client set: it registers clients and fans events out to them.
func (b *Bridge) Loop(ctx context.Context) {
	b.logger.Debug("bridge loop starting")
	clients := make(map[*ClientSession]struct{})
	for {
		select {
		case <-ctx.Done():
			for cs := range clients {
				close(cs.MessagesToSend)
			}
			b.logger.Debug("bridge loop stopped")
			return
		case cs := <-b.register:
			clients[cs] = struct{}{}
			cs.setState(CS_OPEN)
			b.Metrics.clientJoined()
			b.logger.WithField("client", cs.Id).Info("client connected")
		case cs := <-b.unregister:
			if _, ok := clients[cs]; !ok {
				continue
			}
			delete(clients, cs)
			close(cs.MessagesToSend)
			b.Metrics.clientLeft()
			b.logger.WithFields(log.Fields{
				"client": cs.Id,
				"state":  cs.State().Name(),
			}).Info("client disconnected")
		case ev := <-b.events:
			for cs := range clients {
				select {
				case cs.MessagesToSend <- ev:
				default:
					b.Metrics.incEventsDropped()
					b.logger.WithField("client", cs.Id).Warn("client queue full, dropping event")
				}
			}
		}
	}
}

// Publish queues ev for every connected client. It never blocks the caller.
func (b *Bridge) Publish(ev model.Event) {
	select {
	case b.events <- ev:
	default:
		b.Metrics.incEventsDropped()
		b.logger.WithField("type", ev.Type).Warn("event queue full, dropping event")
	}
}

func (b *Bridge) SetSnapshot(s model.Snapshot) {
	b.mu.Lock()
	b.snapshot = s
	b.mu.Unlock()
}

func (b *Bridge) Snapshot() model.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}

// Submit validates cmd and queues it for Drain.
func (b *Bridge) Submit(cmd model.Command) error {
	if err := cmd.Validate(); err != nil {
		b.Metrics.incRejected()
		return err
	}
	select {
	case b.commands <- cmd:
		b.Metrics.incAccepted()
		return nil
	default:
		b.Metrics.incCommandDropped()
		return errors.New("command queue full")
	}
}

// Drain hands every queued command to fn without blocking and reports how
// many there were. Hosts call it from their loop goroutine.
func (b *Bridge) Drain(fn func(model.Command)) int {
	n := 0
	for {
		select {
		case cmd := <-b.commands:
			fn(cmd)
			n++
		default:
			return n
		}
	}
}
