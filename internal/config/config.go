// Package config loads application settings from a .env file and environment
// variables, plus an optional YAML balance file that overrides the game's
// tuning constants. Environment variables always take precedence over .env
// file values.
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime settings for the game shell.
type Config struct {
	// Seed for the simulation RNG. 0 means derive from the clock.
	Seed int64

	// Debug lowers the log level and enables the engine debug log file.
	Debug bool

	// BalanceFile optionally points at a YAML balance override file.
	BalanceFile string

	// PlayerName pre-fills the name prompt when set.
	PlayerName string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	// Silently load .env - OK if the file doesn't exist.
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SEED", int64(0))
	v.SetDefault("DEBUG", false)
	v.SetDefault("BALANCE_FILE", "")
	v.SetDefault("PLAYER_NAME", "")

	cfg := &Config{
		Seed:        v.GetInt64("SEED"),
		Debug:       v.GetBool("DEBUG"),
		BalanceFile: v.GetString("BALANCE_FILE"),
		PlayerName:  v.GetString("PLAYER_NAME"),
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
