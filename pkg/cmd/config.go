package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML file passed with --config.
//
//	distance = 1
//	max_depth = 512
//	max_visits = 1000000
//
// Unset keys leave the flag defaults alone.
type Config struct {
	Distance  *int `toml:"distance"`
	MaxDepth  *int `toml:"max_depth"`
	MaxVisits *int `toml:"max_visits"`
}

func NewConfigFromFile(path string) (Config, error) {
	var config Config

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("Decoding config file '%s': %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("Unknown key '%s' in config file '%s'", undecoded[0], path)
	}

	return config, nil
}
