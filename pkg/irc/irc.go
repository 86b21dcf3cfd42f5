package irc

import (
	"crypto/tls"
	"fmt"
	"strings"

	"chatmod/pkg/config"

	irce "github.com/thoj/go-ircevent"
)

const maxMessageLength = 400

type IRC interface {
	Connect(cfg *config.Config, connected func()) error
	Listen(ech chan *Event)
	Join(channel string)
	SendMessage(target, message string)
	Kick(channel, nick, reason string)
	Mute(channel, mask string)
	Unmute(channel, mask string)
	Ban(channel, mask string)
	Unban(channel, mask string)
	Disconnect()
}

func NewIRC() IRC {
	return &service{}
}

type service struct {
	cfg  *config.Config
	conn *irce.Connection
	ech  chan *Event
}

func (s *service) Connect(cfg *config.Config, connected func()) error {
	s.cfg = cfg

	s.conn = irce.IRC(cfg.IRC.Nick, cfg.IRC.Username)
	s.conn.RealName = cfg.IRC.RealName
	s.conn.Debug = false
	s.conn.VerboseCallbackHandler = false

	if cfg.IRC.TLS {
		s.conn.UseTLS = true
		s.conn.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	s.conn.AddCallback("001", func(e *irce.Event) {
		for _, channel := range cfg.IRC.Channels {
			s.conn.Join(channel)
		}
		if connected != nil {
			connected()
		}
	})

	return s.conn.Connect(fmt.Sprintf("%s:%d", cfg.IRC.Server, cfg.IRC.Port))
}

func (s *service) Listen(ech chan *Event) {
	s.ech = ech

	s.conn.AddCallback("*", func(event *irce.Event) {
		if s.ech != nil {
			s.ech <- createEvent(event)
		}
	})

	s.conn.Loop()
}

func (s *service) Join(channel string) {
	s.conn.Join(channel)
}

func (s *service) SendMessage(target, message string) {
	message = strings.ReplaceAll(message, "\r", "")
	message = strings.ReplaceAll(message, "\n", " ")
	message = strings.TrimSpace(message)

	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}

	s.conn.Privmsg(target, message)
}

func (s *service) Kick(channel, nick, reason string) {
	s.conn.Kick(nick, channel, reason)
}

// Mute sets the quiet mode on a mask; servers without +q fall back to
// moderated-channel voice management outside this wrapper's scope.
func (s *service) Mute(channel, mask string) {
	s.conn.Mode(channel, "+q", mask)
}

func (s *service) Unmute(channel, mask string) {
	s.conn.Mode(channel, "-q", mask)
}

func (s *service) Ban(channel, mask string) {
	s.conn.Mode(channel, "+b", mask)
}

func (s *service) Unban(channel, mask string) {
	s.conn.Mode(channel, "-b", mask)
}

func (s *service) Disconnect() {
	s.conn.Quit()
}
