package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/highscore"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/spectate"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// openStore returns the remote API client when apiURL is set and the
// local database otherwise. The returned closer is never nil.
func openStore(apiURL string, logger *log.Logger) (highscore.Store, io.Closer, error) {
	if apiURL != "" {
		c := highscore.NewClient(apiURL, nil)
		c.SetLogger(logger)
		return c, io.NopCloser(nil), nil
	}
	db, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, io.NopCloser(nil), err
	}
	return db, db, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// resolveShip accepts a ship name or its index in the ship list.
func resolveShip(v string) (int, error) {
	names := invaders.ShipNames()
	if i, err := strconv.Atoi(v); err == nil {
		if i < 0 || i >= len(names) {
			return 0, fmt.Errorf("ship index %d out of range (0-%d)", i, len(names)-1)
		}
		return i, nil
	}
	for i, n := range names {
		if n == v {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown ship %q (run 'invaders list')", v)
}

// extras holds the optional sound and spectator outputs for a local game.
type extras struct {
	logger *log.Logger
	sound  *audio.Player
	hub    *spectate.Hub
	srv    *http.Server
	stop   context.CancelFunc
}

func startExtras(logger *log.Logger, sound bool, spectateAddr string) *extras {
	x := &extras{logger: logger, stop: func() {}}
	if sound {
		x.sound = audio.NewPlayer(logger)
		if err := x.sound.Init(); err != nil {
			x.sound = nil
		}
	}
	if spectateAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		x.stop = cancel
		x.hub = spectate.NewHub(logger)
		go x.hub.Run(ctx)
		x.srv = &http.Server{
			Addr:              spectateAddr,
			Handler:           x.hub.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := x.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("spectator server", "error", err)
			}
		}()
		logger.Info("spectators can connect", "url", "ws://"+spectateAddr+"/ws")
	}
	return x
}

// attach wires the outputs into a freshly created game.
func (x *extras) attach(g registry.Game) {
	ig, ok := g.(*invaders.Game)
	if !ok {
		return
	}
	ig.SetLogger(x.logger)
	if x.sound != nil {
		ig.SetSound(x.sound)
	}
	if x.hub != nil {
		ig.SetObserver(x.hub.Publish)
	}
}

func (x *extras) close() {
	if x.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		x.srv.Shutdown(ctx)
		cancel()
	}
	x.stop()
	if x.sound != nil {
		x.sound.Close()
	}
}
