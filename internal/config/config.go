package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danbrakeley/p4opts/internal/options"
)

// Server holds the connection settings. Empty values fall back to P4PORT, P4USER and
// P4CLIENT (see ApplyEnv).
type Server struct {
	P4Port   string `toml:"p4port"`
	P4User   string `toml:"p4user"`
	P4Client string `toml:"p4client"`
}

type Parallel struct {
	Threads   int `toml:"threads"`
	Batch     int `toml:"batch"`
	BatchSize int `toml:"batchsize"`
	Min       int `toml:"min"`
	MinSize   int `toml:"minsize"`
}

// Defaults are used when a command line doesn't say otherwise.
type Defaults struct {
	Max      int      `toml:"max"`
	Parallel Parallel `toml:"parallel"`
}

type Config struct {
	Server   Server   `toml:"server"`
	Defaults Defaults `toml:"defaults"`

	// save the file from which this config was loaded, for logging purposes
	filename string
}

func (c *Config) Filename() string {
	return c.filename
}

func (c *Config) ParallelOptions() options.ParallelOptions {
	p := c.Defaults.Parallel
	return options.ParallelOptions{
		Threads:   p.Threads,
		Batch:     p.Batch,
		BatchSize: p.BatchSize,
		Min:       p.Min,
		MinSize:   p.MinSize,
	}
}

// ApplyEnv fills in empty server settings from the environment, using getenv (ie os.Getenv).
func (c *Config) ApplyEnv(getenv func(string) string) {
	if len(c.Server.P4Port) == 0 {
		c.Server.P4Port = getenv("P4PORT")
	}
	if len(c.Server.P4User) == 0 {
		c.Server.P4User = getenv("P4USER")
	}
	if len(c.Server.P4Client) == 0 {
		c.Server.P4Client = getenv("P4CLIENT")
	}
}

func (c *Config) WriteToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Error opening '%s': %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("Error encoding/writing '%s': %w", path, err)
	}

	return nil
}

// Load helpers

// ErrNotFound is returned by LoadFromFirstFile when none of the files exist.
var ErrNotFound = errors.New("config file not found")

// LoadFromFirstFile loads the first of paths that exists.
func LoadFromFirstFile(paths []string) (Config, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return LoadFromFile(path)
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf(`error determining if "%s" exists: %v`, path, err)
		}
	}
	return Config{}, fmt.Errorf("%v: %w", strings.Join(paths, " or "), ErrNotFound)
}

func LoadFromFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("Error opening '%s': %w", path, err)
	}
	defer f.Close()
	cfg, err := loadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("Error parsing '%s': %w", path, err)
	}
	cfg.filename = path
	return cfg, nil
}

func LoadFromString(s string) (Config, error) {
	return loadConfig(strings.NewReader(s))
}

func loadConfig(r io.Reader) (Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("unrecognized key %s", undec[0].String())
	}

	return cfg, nil
}
