package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP server listens on
		Port string `env:"PORT" envDefault:"8000"`

		// Gin mode (release, debug or test)
		GinMode string `env:"GIN_MODE" envDefault:"release"`

		// Path of the rotating request log file
		LogFile string `env:"LOG_FILE" envDefault:"api.log"`
	}

	// Model configuration
	Model struct {
		// Path to the serialized model artifact
		Path string `env:"MODEL_PATH" envDefault:"models/house_price_model.json"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
