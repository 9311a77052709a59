package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/icsboyx/chathole/internal/config"
	"github.com/icsboyx/chathole/internal/core"
	"github.com/icsboyx/chathole/internal/transport/tcp"
)

// App wires together the engine, the command dispatcher, and the TCP
// transport.
type App struct {
	engine     *core.Engine
	dispatcher *core.Dispatcher
	server     *tcp.Server
	log        *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	engine := core.NewEngine()
	return &App{
		engine:     engine,
		dispatcher: core.NewDispatcher(engine, logger),
		server:     tcp.NewServer(engine, cfg, logger),
		log:        logger,
	}
}

// Run starts the dispatcher and the listener and blocks until ctx is
// cancelled or the listener fails. If the dispatcher dies, command
// processing halts server-wide while chat keeps flowing; that is surfaced
// at error level.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dispatcherDone := make(chan error, 1)
	go func() {
		dispatcherDone <- a.dispatcher.Run(ctx)
	}()

	err := a.server.ListenAndServe(ctx)
	cancel()

	if derr := <-dispatcherDone; derr != nil && !errors.Is(derr, context.Canceled) {
		a.log.Error().Err(derr).Msg("dispatcher stopped; command processing halted")
		if err == nil {
			err = derr
		}
	}
	return err
}
