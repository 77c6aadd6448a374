package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Players  Players `yaml:"players"`
}

// Players - optional preset names; when both are set the application
// starts a game on boot instead of waiting for a start command.
type Players struct {
	XName string `yaml:"x-name" env-default:""`
	OName string `yaml:"o-name" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Players) HasPreset() bool {
	return that.XName != "" && that.OName != ""
}
