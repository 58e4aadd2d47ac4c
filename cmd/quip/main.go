package main

//                  _
//   __ _  _   _(_)_ __
//  / _' || | | | | '_ \
// | (_| || |_| | | |_) |
//  \__, | \__,_|_| .__/
//     |_|        |_|

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"pkdindustries/quip/internal/bot"
	"pkdindustries/quip/internal/config"
)

func main() {
	fmt.Print(bot.GetBanner(bot.Version))

	cmd := &cli.Command{
		Name:    "quip",
		Usage:   "a command bot for irc",
		Version: bot.Version,
		Flags:   config.GetFlags(),
		Action:  run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	cfg := config.NewConfiguration(c)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Bot.Verbose {
		cfg.PrintConfig()
	}
	return bot.Run(ctx, cfg)
}
