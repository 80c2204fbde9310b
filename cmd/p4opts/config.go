package main

import (
	"errors"

	"github.com/danbrakeley/p4opts/internal/config"
)

// loadConfig loads --config if given, or else the first default config file that
// exists. With no config file at all, the settings come from the environment only.
func (a *app) loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error
	if len(a.configPath) > 0 {
		cfg, err = config.LoadFromFile(a.configPath)
	} else {
		cfg, err = config.LoadFromFirstFile(configFileNames)
		if errors.Is(err, config.ErrNotFound) {
			cfg, err = config.Config{}, nil
		}
	}
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(a.getenv)
	return cfg, nil
}
