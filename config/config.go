package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
)

const (
	DefaultConfigFile = "./config.yml"
	DefaultAddr       = ":8080"
	DefaultTimeout    = "30s"
)

type ConfigExport struct {
	Path     string `json:"path" toml:"path"`
	Compress bool   `json:"compress" toml:"compress"`
}

type ConfigStore struct {
	Path string `json:"path" toml:"path"`
}

type ConfigReport struct {
	Url     string `json:"url" toml:"url"`
	Series  string `json:"series" toml:"series"`
	Timeout string `json:"timeout" toml:"timeout"`
}

type ConfigServer struct {
	Addr string `json:"addr" toml:"addr"`
}

type ConfigBuilder struct {
	Script      string            `json:"script" toml:"script"`
	TeamAliases map[string]string `json:"team_aliases" toml:"team_aliases"`
}

type Config struct {
	Workers int           `json:"workers" toml:"workers"`
	Verbose bool          `json:"verbose" toml:"verbose"`
	Export  ConfigExport  `json:"export" toml:"export"`
	Store   ConfigStore   `json:"store" toml:"store"`
	Report  ConfigReport  `json:"report" toml:"report"`
	Server  ConfigServer  `json:"server" toml:"server"`
	Builder ConfigBuilder `json:"builder" toml:"builder"`
}

// Default returns a config with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Report.Timeout == "" {
		c.Report.Timeout = DefaultTimeout
	}
}

// Load reads a config file. Files ending in .toml are decoded as TOML,
// everything else as YAML.
func Load(file string) (*Config, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c := &Config{}
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		err = toml.Unmarshal(raw, c)
	} else {
		err = yaml.Unmarshal(raw, c)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %v: %w", file, err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := c.ReportTimeout(); err != nil {
		return fmt.Errorf("invalid report timeout %q: %w", c.Report.Timeout, err)
	}
	return nil
}

func (c *Config) ReportTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Report.Timeout)
}
