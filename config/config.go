package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"othello/meta"
)

const (
	ModePlay     = "play"
	ModeSelfPlay = "selfplay"
	ModeHistory  = "history"
)

type Config struct {
	Mode          string `mapstructure:"mode"`
	Difficulty    int    `mapstructure:"difficulty"` // 0 asks at the console
	Seed          uint64 `mapstructure:"seed"`       // 0 seeds from the clock
	LogLevel      string `mapstructure:"log_level"`
	DBPath        string `mapstructure:"db_path"`  // empty disables game records
	SVGPath       string `mapstructure:"svg_path"` // empty disables board snapshots
	SelfPlayGames int    `mapstructure:"selfplay_games"`
	SelfPlayDepth []int  `mapstructure:"selfplay_depths"`
	ResultsDir    string `mapstructure:"results_dir"`
	HistoryLimit  int    `mapstructure:"history_limit"`
}

// Load reads configuration from command-line flags, OTHELLO_* environment variables and
// an optional config file given with --config, in that order of precedence.
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("mode", ModePlay)
	v.SetDefault("difficulty", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("db_path", "")
	v.SetDefault("svg_path", "")
	v.SetDefault("selfplay_games", 10)
	v.SetDefault("selfplay_depths", []int{1, 2, 3})
	v.SetDefault("results_dir", "experiments")
	v.SetDefault("history_limit", 10)

	flags := pflag.NewFlagSet("othello", pflag.ContinueOnError)
	cfgPath := flags.String("config", "", "path to a config file")
	flags.String("mode", ModePlay, "play against the computer, run a self-play experiment or list recorded games (play|selfplay|history)")
	flags.Int("difficulty", 0, "search depth of the computer, 1-5 (0 asks)")
	flags.Uint64("seed", 0, "random seed for tie-breaking (0 uses the clock)")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("db-path", "", "SQLite file for finished games")
	flags.String("svg-path", "", "file to write an SVG snapshot of the board to after each move")
	flags.Int("selfplay-games", 10, "games per self-play matchup")
	flags.IntSlice("selfplay-depths", []int{1, 2, 3}, "search depths to match up in self-play")
	flags.String("results-dir", "experiments", "directory for self-play CSV results")
	flags.Int("history-limit", 10, "number of recorded games to list")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	for key, flag := range map[string]string{
		"mode":            "mode",
		"difficulty":      "difficulty",
		"seed":            "seed",
		"log_level":       "log-level",
		"db_path":         "db-path",
		"svg_path":        "svg-path",
		"selfplay_games":  "selfplay-games",
		"selfplay_depths": "selfplay-depths",
		"results_dir":     "results-dir",
		"history_limit":   "history-limit",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix("othello")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *cfgPath != "" {
		v.SetConfigFile(*cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModePlay, ModeSelfPlay:
	case ModeHistory:
		if c.DBPath == "" {
			return fmt.Errorf("history mode needs db_path")
		}
		if c.HistoryLimit <= 0 {
			return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
		}
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if c.Difficulty < 0 || c.Difficulty > meta.MaxDifficulty {
		return fmt.Errorf("difficulty must be between 0 and %d, got %d", meta.MaxDifficulty, c.Difficulty)
	}
	if c.Mode == ModeSelfPlay {
		if c.SelfPlayGames <= 0 {
			return fmt.Errorf("selfplay_games must be positive, got %d", c.SelfPlayGames)
		}
		if len(c.SelfPlayDepth) == 0 {
			return fmt.Errorf("selfplay_depths must not be empty")
		}
		for _, d := range c.SelfPlayDepth {
			if d < 0 || d > meta.EndgameDepth {
				return fmt.Errorf("self-play depth must be between 0 and %d, got %d", meta.EndgameDepth, d)
			}
		}
	}
	return nil
}
