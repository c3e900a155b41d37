package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battlesquares/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	DefaultBaseUrl        = "https://battlesquares.internal-tools.vastvisibility.co.uk"
	DefaultPlayerName     = "5leiz"
	DefaultPort           = 8000
	DefaultPollInterval   = time.Second * 2
	DefaultRequestTimeout = time.Second * 10
)

// Env holds everything read from the process environment.
type Env struct {
	Stage         string
	Port          int
	DatabaseUrl   string
	BaseUrl       string
	PlayerName    string
	BotConfigPath string
}

// BotConfig tunes the decision loop. It is read from an optional YAML file.
type BotConfig struct {
	PollInterval   time.Duration `yaml:"poll_interval"`
	WaitTimeout    time.Duration `yaml:"wait_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxCycles      int           `yaml:"max_cycles"`
	GameId         int           `yaml:"game_id"`
	NewGamePlayers int           `yaml:"new_game_players"`
}

func DefaultBotConfig() BotConfig {
	return BotConfig{
		PollInterval:   DefaultPollInterval,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// LoadEnv reads .env outside of prod and then the environment.
// A missing .env file is not an error in dev.
func LoadEnv() (Env, error) {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = StageDev
	}
	if stage != StageDev && stage != StageProd {
		return Env{}, cerr.ErrInvalidStage(stage)
	}

	if stage != StageProd {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			return Env{}, err
		}
	}

	env := Env{
		Stage:         stage,
		Port:          DefaultPort,
		DatabaseUrl:   os.Getenv("DATABASE_URL"),
		BaseUrl:       getEnvOr("BASE_URL", DefaultBaseUrl),
		PlayerName:    getEnvOr("PLAYER_NAME", DefaultPlayerName),
		BotConfigPath: os.Getenv("BOT_CONFIG"),
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return Env{}, fmt.Errorf("invalid PORT %q: %w", portEnv, err)
		}
		env.Port = port
	}

	return env, nil
}

// LoadBotConfig overlays the YAML file at path on top of the defaults.
// An empty path returns the defaults.
func LoadBotConfig(path string) (BotConfig, error) {
	cfg := DefaultBotConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return BotConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return BotConfig{}, fmt.Errorf("failed to parse bot config %s: %w", path, err)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return cfg, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
