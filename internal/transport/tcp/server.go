// Package tcp owns the raw TCP surface: one listener, one session goroutine
// per accepted connection. Sessions translate the byte stream into chat and
// command traffic on the shared engine.
package tcp

import (
	"context"
	"fmt"
	"net"

	"github.com/rs/zerolog"

	"github.com/icsboyx/chathole/internal/config"
	"github.com/icsboyx/chathole/internal/core"
)

// Server accepts connections and hands each one to a session.
type Server struct {
	engine *core.Engine
	cfg    *config.Config
	log    *zerolog.Logger
}

// NewServer builds the TCP server over the shared engine.
func NewServer(engine *core.Engine, cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{engine: engine, cfg: cfg, log: logger}
}

// ListenAndServe accepts connections until ctx is cancelled. There is no
// connection bound and no idle timeout; a session runs until its socket
// closes or errors.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("accepting connections")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		client := s.engine.Connect(s.cfg.ChatLines, s.cfg.WrapWidth)
		client.Screen().SetHeader(s.cfg.Header)

		sess := newSession(conn, client, s.engine, s.cfg, s.log)
		s.log.Info().
			Int("client_id", client.ID).
			Str("remote", conn.RemoteAddr().String()).
			Msg("client connected")
		go sess.run()
	}
}
