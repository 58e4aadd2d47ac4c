package irc

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/lrstanley/girc"
	"go.uber.org/zap"

	"pkdindustries/quip/internal/config"
	"pkdindustries/quip/internal/core"
)

// commander is the part of girc.Commands the client sends through
type commander interface {
	Message(target, message string)
	Action(target, message string)
}

// Client adapts a girc connection to core.Transport
type Client struct {
	cfg    *config.Configuration
	irc    *girc.Client
	cmd    commander
	logger *zap.SugaredLogger
}

var _ core.Transport = (*Client)(nil)

// NewClient creates an unconnected IRC client for cfg
func NewClient(cfg *config.Configuration, logger *zap.SugaredLogger) *Client {
	ircClient := girc.New(girc.Config{
		Server:    cfg.Server.Host,
		Port:      cfg.Server.Port,
		Nick:      cfg.Server.Nick,
		User:      "quip",
		Name:      "quip",
		SSL:       cfg.Server.SSL,
		TLSConfig: &tls.Config{InsecureSkipVerify: cfg.Server.TLSInsecure},
	})

	if cfg.Server.SASLNick != "" && cfg.Server.SASLPass != "" {
		ircClient.Config.SASL = &girc.SASLPlain{
			User: cfg.Server.SASLNick,
			Pass: cfg.Server.SASLPass,
		}
	}

	return &Client{
		cfg:    cfg,
		irc:    ircClient,
		cmd:    ircClient.Cmd,
		logger: logger,
	}
}

// Listen wires girc events to l. Handlers run in the foreground, so events
// reach the listener one at a time.
func (c *Client) Listen(l core.Listener) {
	c.irc.Handlers.Add(girc.CONNECTED, func(client *girc.Client, e girc.Event) {
		c.logger.Infow("Joining channels", "channels", c.cfg.Server.Channels)
		client.Cmd.Join(c.cfg.Server.Channels...)
	})

	c.irc.Handlers.Add(girc.PRIVMSG, func(client *girc.Client, e girc.Event) {
		Route(l, e)
	})

	c.irc.Handlers.Add(girc.ERROR, func(client *girc.Client, e girc.Event) {
		l.OnError(fmt.Errorf("server error: %s", e.Last()))
	})
}

// Route delivers a PRIVMSG event to l as a channel or private message
func Route(l core.Listener, e girc.Event) {
	if e.Source == nil || len(e.Params) < 2 || e.IsAction() {
		return
	}

	from := e.Source.Name
	target := e.Params[0]
	if CheckPrivate(target) {
		l.OnPrivateMessage(from, e.Last())
		return
	}
	l.OnMessage(from, target, e.Last())
}

// Say sends text to target, split into chunks that fit an IRC line
func (c *Client) Say(target, text string) {
	for _, chunk := range Chunk(text, c.cfg.Bot.ChunkMax) {
		c.cmd.Message(target, chunk)
	}
}

// Act sends an action to target
func (c *Client) Act(target, text string) {
	c.cmd.Action(target, text)
}

// Connect makes a single connection attempt and blocks until it ends.
// Cancelling ctx quits the server and is not reported as an error.
func (c *Client) Connect(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.irc.Quit("Shutting down...")
			c.logger.Info("IRC client closed")
		case <-done:
		}
	}()

	c.logger.Infow("Connecting to server",
		"server", c.irc.Config.Server,
		"port", c.irc.Config.Port,
		"tls", c.irc.Config.SSL,
		"sasl", c.irc.Config.SASL != nil,
	)

	if err := c.irc.Connect(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connect to %s:%d: %w", c.cfg.Server.Host, c.cfg.Server.Port, err)
	}
	return nil
}
