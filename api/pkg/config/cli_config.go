package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type CliConfig struct {
	URL           string `envconfig:"OBS_URL" default:"http://localhost:80"`
	User          string `envconfig:"OBS_USER"`
	UserHeader    string `envconfig:"OBS_USER_HEADER" default:"X-Username"`
	TLSSkipVerify bool   `envconfig:"OBS_TLS_SKIP_VERIFY" default:"false"`
}

func LoadCliConfig() (CliConfig, error) {
	_ = godotenv.Load()

	var cfg CliConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return CliConfig{}, err
	}
	return cfg, nil
}
