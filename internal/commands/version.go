package commands

import (
	"pkdindustries/quip/internal/core"
)

// VersionCommand replies with the bot's nick and version
type VersionCommand struct {
	Nick    string
	Version string
}

func (c *VersionCommand) Name() string         { return "version" }
func (c *VersionCommand) Help() (string, bool) { return "<noargs> shows which version of the bot is running", true }

func (c *VersionCommand) Respond(s core.Sender, from, to string, args []string, raw string) bool {
	s.Say(to, c.Nick+" "+c.Version)
	return true
}
