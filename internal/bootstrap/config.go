package bootstrap

import (
	"github.com/spf13/viper"
)

// Config carries the engine settings the presentation layer may tune. The
// zero value is not usable; start from Default or Setup.
type Config struct {
	BoardSize int     `mapstructure:"BOARD_SIZE"`
	Komi      float64 `mapstructure:"KOMI"`
	KoRule    string  `mapstructure:"KO_RULE"`
}

// Default is the configuration used when no file is supplied: a 19×19 board,
// standard 6.5 komi, simple ko.
func Default() Config {
	return Config{
		BoardSize: 19,
		Komi:      6.5,
		KoRule:    "simple",
	}
}

// Setup reads an env-style config file from cfgPath. Missing keys fall back
// to Default values.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)

	def := Default()
	v.SetDefault("BOARD_SIZE", def.BoardSize)
	v.SetDefault("KOMI", def.Komi)
	v.SetDefault("KO_RULE", def.KoRule)

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
