package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	Header            string        `mapstructure:"header" yaml:"header"`
	ChatLines         int           `mapstructure:"chat_lines" yaml:"chat_lines"`
	WrapWidth         int           `mapstructure:"wrap_width" yaml:"wrap_width"`
	PollInterval      time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	CommandGraceDelay time.Duration `mapstructure:"command_grace_delay" yaml:"command_grace_delay"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":2121",
		Header:            "IcsBoyX ChatHole server",
		ChatLines:         20,
		WrapWidth:         60,
		PollInterval:      10 * time.Millisecond,
		CommandGraceDelay: 100 * time.Millisecond,
		LogLevel:          "info",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.Header != "" {
		c.Header = other.Header
	}
	if other.ChatLines != 0 {
		c.ChatLines = other.ChatLines
	}
	if other.WrapWidth != 0 {
		c.WrapWidth = other.WrapWidth
	}
	if other.PollInterval != 0 {
		c.PollInterval = other.PollInterval
	}
	if other.CommandGraceDelay != 0 {
		c.CommandGraceDelay = other.CommandGraceDelay
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
