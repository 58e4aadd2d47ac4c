package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"pkdindustries/quip/internal/config"
	"pkdindustries/quip/internal/core"
)

// configFields maps readable keys to their getters. Secrets are not exposed.
var configFields = map[string]func(*config.Configuration) string{
	"host":     func(c *config.Configuration) string { return c.Server.Host },
	"port":     func(c *config.Configuration) string { return strconv.Itoa(c.Server.Port) },
	"nick":     func(c *config.Configuration) string { return c.Server.Nick },
	"channels": func(c *config.Configuration) string { return strings.Join(c.Server.Channels, ", ") },
	"tls":      func(c *config.Configuration) string { return strconv.FormatBool(c.Server.SSL) },
	"chunkmax": func(c *config.Configuration) string { return strconv.Itoa(c.Bot.ChunkMax) },
}

func getConfigKeys() []string {
	keys := make([]string, 0, len(configFields))
	for k := range configFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// GetCommand reads a configuration value
type GetCommand struct {
	Config *config.Configuration
}

func (c *GetCommand) Name() string { return "get" }

func (c *GetCommand) Help() (string, bool) {
	return "<key> shows a configuration value, one of: " + strings.Join(getConfigKeys(), ", "), true
}

func (c *GetCommand) Respond(s core.Sender, from, to string, args []string, raw string) bool {
	keys := getConfigKeys()
	if len(args) < 2 {
		s.Say(to, fmt.Sprintf("Usage: get <key>. Available keys: %s", strings.Join(keys, ", ")))
		return false
	}

	param := args[1]
	getter, ok := configFields[param]
	if !ok {
		s.Say(to, fmt.Sprintf("Unknown key %s. Available keys: %s", param, strings.Join(keys, ", ")))
		return false
	}

	s.Say(to, fmt.Sprintf("%s: %s", param, getter(c.Config)))
	return true
}
