package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	Address   string        `yaml:"address" env:"ADDRESS" env-default:":3001"`
	DBAddress string        `yaml:"db_address" env:"DB_ADDRESS" env-required:"true"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"5s"`
}

// MustLoad reads the yaml config at path, falling back to environment
// variables when the path is empty or the file is missing.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
