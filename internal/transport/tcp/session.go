package tcp

import (
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/icsboyx/chathole/internal/config"
	"github.com/icsboyx/chathole/internal/core"
	"github.com/icsboyx/chathole/internal/term"
)

const farewell = "See you later alligator!"

// interruptSeqs are the out-of-band disconnect signals: the telnet Ctrl-C
// negotiation (IAC IP IAC DO TIMING-MARK) or a bare ETX. Never treated as
// text.
var interruptSeqs = [][]byte{
	{255, 244, 255, 253, 6},
	{3},
}

// session is the per-connection loop. It owns the socket and the client
// identity, frames lines out of the byte stream, classifies them as chat or
// command, and drains the client's inbound bus into renders. Reads use a
// short deadline as the non-blocking poll: a deadline timeout means "no data
// yet" and just moves on to the drain step.
type session struct {
	conn   net.Conn
	client *core.Client
	engine *core.Engine
	poll   time.Duration
	grace  time.Duration
	log    zerolog.Logger

	buf []byte
}

func newSession(conn net.Conn, client *core.Client, engine *core.Engine, cfg *config.Config, logger *zerolog.Logger) *session {
	return &session{
		conn:   conn,
		client: client,
		engine: engine,
		poll:   cfg.PollInterval,
		grace:  cfg.CommandGraceDelay,
		log: logger.With().
			Str("conn_id", uuid.NewString()).
			Int("client_id", client.ID).
			Logger(),
	}
}

func (s *session) run() {
	defer s.conn.Close()
	defer func() {
		// Deliberate deviation from append-only semantics: detach the dead
		// client so it stops counting as a channel member. The registry
		// entry itself stays.
		if err := s.client.LeaveChannel(); err != nil {
			s.log.Warn().Err(err).Msg("leave channel on disconnect")
		}
	}()

	screen := s.client.Screen()
	s.write(term.Init(screen.Rows()))
	s.write(term.Render(screen))

	readBuf := make([]byte, 1024)
	for {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.poll)); err != nil {
			s.log.Warn().Err(err).Msg("set read deadline")
			return
		}

		n, err := s.conn.Read(readBuf)
		switch {
		case err == nil:
			if n > 0 && s.handleInput(readBuf[:n]) {
				s.goodbye()
				return
			}
		case errors.Is(err, io.EOF):
			s.goodbye()
			return
		case errors.Is(err, os.ErrDeadlineExceeded):
			// No data yet; fall through to the drain step.
		default:
			s.log.Warn().Err(err).Msg("session read failed")
			return
		}

		s.drainInbound()
	}
}

// handleInput accumulates raw bytes and, on a completed line, classifies it.
// Returns true when the peer signalled disconnect.
func (s *session) handleInput(data []byte) bool {
	if isInterrupt(data) {
		return true
	}

	s.buf = append(s.buf, data...)
	if data[len(data)-1] != '\n' {
		return false
	}

	line := strings.TrimRight(string(s.buf), "\r\n")
	s.buf = s.buf[:0]
	screen := s.client.Screen()

	switch {
	case line == "":
		s.write(term.PromptOnly(screen))

	case strings.HasPrefix(line, "/"):
		s.engine.ServiceBus.Push(core.CmdMessage{ClientID: s.client.ID, Payload: line})
		// Bounded grace period so the dispatcher's reply usually lands
		// before the prompt is repainted.
		time.Sleep(s.grace)
		s.write(term.PromptOnly(screen))

	default:
		s.write(term.PromptOnly(screen))
		msg := core.ChatMessage{Nick: s.client.Nick(), Payload: line}
		s.client.Channel().Broadcast(msg, s.client.Inbound)
		screen.AddMessage(msg.Nick, msg.Payload)
		s.write(term.Render(screen))
	}
	return false
}

// drainInbound flushes queued chat (including dispatcher replies) into the
// display, one full render per message.
func (s *session) drainInbound() {
	screen := s.client.Screen()
	for {
		msg, ok := s.client.Inbound.Pop()
		if !ok {
			return
		}
		screen.AddMessage(msg.Nick, msg.Payload)
		s.write(term.Render(screen))
	}
}

// goodbye is the orderly close path: farewell notice, terminal restore.
func (s *session) goodbye() {
	s.client.Screen().AddMessage(term.ServerNick, farewell)
	s.write(term.Restore())
	s.log.Info().Msg("client disconnected")
}

// write pushes rendered bytes at the socket. Write failures are not fatal
// here; the read side notices a dead peer on the next poll.
func (s *session) write(b []byte) {
	if _, err := s.conn.Write(b); err != nil {
		s.log.Debug().Err(err).Msg("write to client")
	}
}

func isInterrupt(data []byte) bool {
	for _, seq := range interruptSeqs {
		if bytes.Equal(data, seq) {
			return true
		}
	}
	return false
}
