package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	EnvStage        = "STAGE"
	EnvScenarioPath = "SCENARIO_PATH"
	EnvRenderMode   = "RENDER_MODE"
	EnvNoColor      = "NO_COLOR"
	EnvAnalyticsDsn = "ANALYTICS_DSN"
	EnvScreenHold   = "SCREEN_HOLD"

	DefaultEnvFile    = ".env"
	defaultScreenHold = time.Second * 10
)

type Config struct {
	Stage        string
	ScenarioPath string
	RenderMode   string
	NoColor      bool
	AnalyticsDsn string
	ScreenHold   time.Duration
}

// Load reads the process environment. Outside prod the env file is loaded
// first, a missing file is fine since the defaults cover everything.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:        os.Getenv(EnvStage),
		ScenarioPath: os.Getenv(EnvScenarioPath),
		RenderMode:   os.Getenv(EnvRenderMode),
		AnalyticsDsn: os.Getenv(EnvAnalyticsDsn),
		ScreenHold:   defaultScreenHold,
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(cfg.Stage)
	}

	// Any non-empty value disables color, see no-color.org
	if os.Getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}

	if raw := os.Getenv(EnvScreenHold); raw != "" {
		hold, err := time.ParseDuration(raw)
		if err != nil {
			secs, convErr := strconv.Atoi(raw)
			if convErr != nil {
				return Config{}, err
			}
			hold = time.Duration(secs) * time.Second
		}
		cfg.ScreenHold = hold
	}

	return cfg, nil
}
