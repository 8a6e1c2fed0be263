package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Engine struct {
	DBPath     string `toml:"db_path"`
	RulesPath  string `toml:"rules_path"`
	Iterations int    `toml:"iterations"`
	Debug      bool   `toml:"debug_mode"`
}

func New() (Engine, error) {
	cfg := Engine{
		DBPath:     "file:rating.sqlite?cache=shared",
		RulesPath:  "configs/rules.toml",
		Iterations: 10,
	}
	_, err := toml.DecodeFile("configs/engine.toml", &cfg)
	if err != nil {
		return Engine{}, err
	}
	if path := os.Getenv("RATING_DB_PATH"); path != "" {
		cfg.DBPath = path
	}
	if path := os.Getenv("RATING_RULES_PATH"); path != "" {
		cfg.RulesPath = path
	}
	return cfg, nil
}
