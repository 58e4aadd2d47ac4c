package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is returned when a required field is missing
var ErrInvalidConfiguration = errors.New("config is required and must have host, nick, and channels")

type Configuration struct {
	Server *ServerConfig
	Bot    *BotConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Nick        string
	Channels    []string
	SSL         bool
	TLSInsecure bool
	SASLNick    string
	SASLPass    string
}

type BotConfig struct {
	Verbose     bool
	LogFile     string
	MetricsAddr string
	ChunkMax    int
}

// Validate checks the fields a bot cannot run without
func (c *Configuration) Validate() error {
	if c == nil || c.Server == nil {
		return ErrInvalidConfiguration
	}
	if c.Server.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidConfiguration)
	}
	if c.Server.Nick == "" {
		return fmt.Errorf("%w: missing nick", ErrInvalidConfiguration)
	}
	if len(c.Server.Channels) == 0 {
		return fmt.Errorf("%w: missing channels", ErrInvalidConfiguration)
	}
	for i, ch := range c.Server.Channels {
		if ch == "" {
			return fmt.Errorf("%w: channel %d is empty", ErrInvalidConfiguration, i)
		}
	}
	return nil
}

// YamlSource implements cli.ValueSource for a map loaded from YAML
type YamlSource struct {
	data map[string]any
	key  string
}

func (y *YamlSource) Lookup() (string, bool) {
	if v, ok := y.data[y.key]; ok {
		// slices become comma separated, as StringSliceFlag expects
		if slice, ok := v.([]any); ok {
			var strs []string
			for _, item := range slice {
				strs = append(strs, fmt.Sprintf("%v", item))
			}
			return strings.Join(strs, ","), true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func (y *YamlSource) String() string   { return "yaml" }
func (y *YamlSource) GoString() string { return "yaml" }

// LoadYAML reads a config file into a generic map
func LoadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var configData map[string]any
	if err := yaml.Unmarshal(data, &configData); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return configData, nil
}

// GetFlags returns the command line flags, resolved as env > YAML > default
func GetFlags() []cli.Flag {
	configPath := getConfigPath(os.Args)
	var configData map[string]any
	if configPath != "" {
		var err error
		configData, err = LoadYAML(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", configPath, err)
		}
	}
	return flags(configData)
}

func flags(configData map[string]any) []cli.Flag {
	src := func(key string, env ...string) cli.ValueSourceChain {
		chain := cli.ValueSourceChain{}
		for _, e := range env {
			chain.Chain = append(chain.Chain, cli.EnvVar(e))
		}
		if configData != nil {
			chain.Chain = append(chain.Chain, &YamlSource{data: configData, key: key})
		}
		return chain
	}

	return []cli.Flag{
		// Config file
		&cli.StringFlag{Name: "config", Aliases: []string{"b"}, Usage: "use the named configuration file", Sources: cli.EnvVars("QUIP_CONFIG")},

		// IRC Client Configuration
		&cli.StringFlag{Name: "nick", Aliases: []string{"n"}, Usage: "bot's nickname on the irc server", Sources: src("nick", "QUIP_NICK")},
		&cli.StringFlag{Name: "host", Aliases: []string{"s"}, Usage: "irc server address", Sources: src("host", "QUIP_HOST")},
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 6667, Usage: "irc server port", Sources: src("port", "QUIP_PORT")},
		&cli.StringSliceFlag{Name: "channels", Aliases: []string{"c"}, Usage: "comma-separated list of irc channels to join, in order", Sources: src("channels", "QUIP_CHANNELS")},
		&cli.BoolFlag{Name: "tls", Aliases: []string{"e"}, Usage: "enable TLS for the IRC connection", Sources: src("tls", "QUIP_TLS")},
		&cli.BoolFlag{Name: "tlsinsecure", Usage: "skip TLS certificate verification", Sources: src("tlsinsecure", "QUIP_TLSINSECURE")},
		&cli.StringFlag{Name: "saslnick", Usage: "nick used for SASL", Sources: src("saslnick", "QUIP_SASLNICK")},
		&cli.StringFlag{Name: "saslpass", Usage: "password for SASL plain", Sources: src("saslpass", "QUIP_SASLPASS")},

		// Bot Configuration
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "enable verbose logging", Sources: src("verbose", "QUIP_VERBOSE")},
		&cli.StringFlag{Name: "logfile", Usage: "also write JSON logs to this file, rotated", Sources: src("logfile", "QUIP_LOGFILE")},
		&cli.StringFlag{Name: "metrics", Usage: "address to serve prometheus metrics on, e.g. :9090", Sources: src("metrics", "QUIP_METRICS")},
		&cli.IntFlag{Name: "chunkmax", Aliases: []string{"m"}, Value: 350, Usage: "maximum number of characters to send as a single message", Sources: src("chunkmax", "QUIP_CHUNKMAX")},
	}
}

func getConfigPath(args []string) string {
	if v := os.Getenv("QUIP_CONFIG"); v != "" {
		return v
	}
	for i, arg := range args {
		if arg == "--config" || arg == "-b" {
			if i+1 < len(args) {
				return args[i+1]
			}
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func (c *Configuration) PrintConfig() {
	fmt.Printf("nick: %s\n", c.Server.Nick)
	fmt.Printf("host: %s\n", c.Server.Host)
	fmt.Printf("port: %d\n", c.Server.Port)
	fmt.Printf("channels: %s\n", strings.Join(c.Server.Channels, ", "))
	fmt.Printf("tls: %t\n", c.Server.SSL)
	fmt.Printf("tlsinsecure: %t\n", c.Server.TLSInsecure)
	fmt.Printf("saslnick: %s\n", c.Server.SASLNick)
	fmt.Printf("saslpass: %s\n", MaskSecret(c.Server.SASLPass))
	fmt.Printf("verbose: %t\n", c.Bot.Verbose)
	fmt.Printf("logfile: %s\n", c.Bot.LogFile)
	fmt.Printf("metrics: %s\n", c.Bot.MetricsAddr)
	fmt.Printf("chunkmax: %d\n", c.Bot.ChunkMax)
}

// MaskSecret hides all but the last three characters
func MaskSecret(s string) string {
	if len(s) > 3 {
		return strings.Repeat("*", len(s)-3) + s[len(s)-3:]
	}
	return s
}

// NewConfiguration builds a Configuration from parsed flags. It does not validate.
func NewConfiguration(c *cli.Command) *Configuration {
	var channels []string
	for _, ch := range c.StringSlice("channels") {
		if ch = strings.TrimSpace(ch); ch != "" {
			channels = append(channels, ch)
		}
	}

	return &Configuration{
		Server: &ServerConfig{
			Host:        c.String("host"),
			Port:        int(c.Int("port")),
			Nick:        c.String("nick"),
			Channels:    channels,
			SSL:         c.Bool("tls"),
			TLSInsecure: c.Bool("tlsinsecure"),
			SASLNick:    c.String("saslnick"),
			SASLPass:    c.String("saslpass"),
		},
		Bot: &BotConfig{
			Verbose:     c.Bool("verbose"),
			LogFile:     c.String("logfile"),
			MetricsAddr: c.String("metrics"),
			ChunkMax:    int(c.Int("chunkmax")),
		},
	}
}
