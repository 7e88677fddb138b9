package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigHistoryFile = "history-file"
	ConfigColor       = "color"
	ConfigCPUProfile  = "cpu-profile"
	ConfigZobristSeed = "zobrist-seed"
	ConfigFile        = "config"
)

// Config holds settings from, in order of precedence, command-line flags,
// OTHELLO_* environment variables, an optional config file and defaults.
type Config struct {
	*viper.Viper

	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigHistoryFile, "/tmp/othello_readline.tmp")
	c.SetDefault(ConfigColor, true)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigZobristSeed, "")
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("othello", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigHistoryFile, "/tmp/othello_readline.tmp", "file for shell history")
	fs.Bool(ConfigColor, true, "use terminal colors in the shell prompt")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")
	fs.String(ConfigZobristSeed, "", "hex-encoded 32-byte seed for deterministic board hashes")
	fs.String(ConfigFile, "", "path to a yaml, toml or json config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("othello")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return nil
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// ZobristSeed decodes the configured seed. ok is false when none is set.
func (c *Config) ZobristSeed() (seed [32]byte, ok bool, err error) {
	s := c.GetString(ConfigZobristSeed)
	if s == "" {
		return seed, false, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return seed, false, fmt.Errorf("bad %s: %w", ConfigZobristSeed, err)
	}
	if len(raw) != len(seed) {
		return seed, false, fmt.Errorf("bad %s: need %d bytes, got %d", ConfigZobristSeed, len(seed), len(raw))
	}
	copy(seed[:], raw)
	return seed, true, nil
}
