package bot

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pkdindustries/quip/internal/commands"
	"pkdindustries/quip/internal/config"
	"pkdindustries/quip/internal/core"
	"pkdindustries/quip/internal/irc"
	"pkdindustries/quip/internal/metrics"
)

// ErrAlreadyRunning is returned by Start on a bot that has been started
var ErrAlreadyRunning = errors.New("bot was already running and can not be restarted")

// Bot routes chat events to the commands in its registry.
// It is driven by one transport, which delivers events one at a time.
type Bot struct {
	cfg       *config.Configuration
	registry  *commands.Registry
	logger    *zap.SugaredLogger
	transport core.Transport
	running   bool
}

var _ core.Listener = (*Bot)(nil)

// New validates cfg and returns a bot that has not been started
func New(cfg *config.Configuration, registry *commands.Registry, logger *zap.SugaredLogger) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = commands.NewRegistry()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Bot{
		cfg:      cfg,
		registry: registry,
		logger:   logger.With("nick", cfg.Server.Nick),
	}, nil
}

func (b *Bot) Registry() *commands.Registry { return b.registry }
func (b *Bot) Running() bool                { return b.running }

// Start attaches the bot to t. A bot can only be started once; later calls
// are logged and rejected without touching the transport.
func (b *Bot) Start(t core.Transport) error {
	if b.running {
		b.logger.Warn(ErrAlreadyRunning.Error())
		metrics.RestartsRejected.Inc()
		return ErrAlreadyRunning
	}

	b.transport = t
	t.Listen(b)
	b.running = true
	b.logger.Infow("Bot started",
		"host", b.cfg.Server.Host,
		"channels", b.cfg.Server.Channels,
		"commands", b.registry.Len(),
	)
	return nil
}

// OnMessage handles a channel message. Messages addressed to the bot are
// parsed as commands; anything else from another user gets a puzzled action.
func (b *Bot) OnMessage(from, to, text string) {
	log := core.WithIRCContext(b.logger, to, from)
	log.Debugf("message [%s => %s]: %s", from, to, text)

	nick := b.cfg.Server.Nick
	if from == nick {
		return
	}

	if irc.CheckAddressed(text, nick) {
		b.HandlePotentialCommand(from, to, irc.CommandText(text))
		return
	}
	b.handleMention(from, to)
}

// OnPrivateMessage treats the whole message as a command and replies to the sender
func (b *Bot) OnPrivateMessage(from, text string) {
	core.WithIRCContext(b.logger, from, from).Debugf("pm [%s]: %s", from, text)
	b.HandlePotentialCommand(from, from, text)
}

// OnError logs transport failures. Nothing is retried.
func (b *Bot) OnError(err error) {
	metrics.TransportErrors.Inc()
	b.logger.Errorw("IRC error", "error", err)
}

func (b *Bot) handleMention(from, to string) {
	metrics.Mentions.Inc()
	b.sender().Act(to, fmt.Sprintf("thinks %s was talking to me, but doesn't understand what %s said", from, from))
}

func (b *Bot) sender() core.Sender {
	if b.transport == nil {
		return discard{}
	}
	return b.transport
}

// discard drops output sent before the bot is started
type discard struct{}

func (discard) Say(target, text string) {}
func (discard) Act(target, text string) {}
