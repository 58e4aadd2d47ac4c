package testing

import (
	"pkdindustries/quip/internal/config"
)

// DefaultTestConfig returns a minimal valid configuration for testing
func DefaultTestConfig() *config.Configuration {
	return &config.Configuration{
		Server: &config.ServerConfig{
			Host:     "irc.test.local",
			Port:     6667,
			Nick:     "testbot",
			Channels: []string{"#test", "#other"},
			SSL:      false,
		},
		Bot: &config.BotConfig{
			Verbose:  false,
			ChunkMax: 350,
		},
	}
}

// Message records a Say() or Act() invocation
type Message struct {
	Target string
	Text   string
}

// ConfigBuilder derives test configurations from DefaultTestConfig
type ConfigBuilder struct {
	cfg *config.Configuration
}

// NewTestConfig starts a builder from the default test configuration
func NewTestConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultTestConfig()}
}

func (b *ConfigBuilder) WithNick(nick string) *ConfigBuilder {
	b.cfg.Server.Nick = nick
	return b
}

func (b *ConfigBuilder) WithChannels(channels ...string) *ConfigBuilder {
	b.cfg.Server.Channels = channels
	return b
}

func (b *ConfigBuilder) WithTLS(insecure bool) *ConfigBuilder {
	b.cfg.Server.SSL = true
	b.cfg.Server.TLSInsecure = insecure
	return b
}

func (b *ConfigBuilder) WithSASL(nick, pass string) *ConfigBuilder {
	b.cfg.Server.SASLNick = nick
	b.cfg.Server.SASLPass = pass
	return b
}

func (b *ConfigBuilder) WithChunkMax(n int) *ConfigBuilder {
	b.cfg.Bot.ChunkMax = n
	return b
}

// Build returns the configuration
func (b *ConfigBuilder) Build() *config.Configuration {
	return b.cfg
}
