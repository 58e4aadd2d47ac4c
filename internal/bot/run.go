package bot

import (
	"context"

	"go.uber.org/zap"

	"pkdindustries/quip/internal/commands"
	"pkdindustries/quip/internal/config"
	"pkdindustries/quip/internal/core"
	"pkdindustries/quip/internal/irc"
	"pkdindustries/quip/internal/metrics"
)

const Version = "0.3.1"

// NewRegistry returns the stock command set. Help comes first so that
// "help <cmd>" is not shadowed by the command it asks about.
func NewRegistry(cfg *config.Configuration) (*commands.Registry, error) {
	registry := commands.NewRegistry()
	commands.RegisterHelp(registry)
	commands.RegisterPing(registry)
	if err := registry.RegisterPattern(`^version\b`, &commands.VersionCommand{Nick: cfg.Server.Nick, Version: "v" + Version}); err != nil {
		return nil, err
	}
	if err := registry.RegisterPattern(`^get\b`, &commands.GetCommand{Config: cfg}); err != nil {
		return nil, err
	}
	return registry, nil
}

// Run starts the IRC bot with the given configuration and blocks until the
// connection ends or ctx is cancelled
func Run(ctx context.Context, cfg *config.Configuration) error {
	logger, err := core.NewLogger(cfg.Bot.Verbose, cfg.Bot.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	registry, err := NewRegistry(cfg)
	if err != nil {
		return err
	}

	b, err := New(cfg, registry, logger)
	if err != nil {
		return err
	}

	if cfg.Bot.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.Bot.MetricsAddr, logger)
	}

	client := irc.NewClient(cfg, logger)
	if err := b.Start(client); err != nil {
		return err
	}

	if err := client.Connect(ctx); err != nil {
		b.OnError(err)
		return err
	}
	return nil
}

func serveMetrics(ctx context.Context, addr string, logger *zap.SugaredLogger) {
	if err := metrics.Serve(ctx, addr, logger); err != nil {
		logger.Errorw("Metrics server failed", "addr", addr, "error", err)
	}
}
