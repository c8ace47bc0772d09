// castle is a turn-based dungeon crawler for the terminal.
//
// Usage:
//
//	castle                   - Title menu: new game, high scores, quit
//	castle play              - Start a run straight away
//	castle scores            - Show the best runs
//	castle config show       - Print the current settings
//	castle config init       - Write the default settings file
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible dungeons
//	--db <path>          - Set database path (default: ~/.castle/castle.db)
//	--config <path>      - Settings file (default: ~/.castle/game.cfg)
//	--tunables <path>    - Dungeon tunables YAML
//	--log-file <path>    - Log file (default: ~/.castle/castle.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/castle-crawler/internal/config"
	"github.com/vovakirdan/castle-crawler/internal/core"
	"github.com/vovakirdan/castle-crawler/internal/logging"
	"github.com/vovakirdan/castle-crawler/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagTunables   string
	flagLogFile    string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "castle",
	Short: "Castle of no Return - a dungeon crawler in your terminal",
	Long: `Castle of no Return is a turn-based dungeon crawler. Fight your way
down through randomly generated levels; every fifth level is guarded by a boss.

Available commands:
  play     - Start a run straight away
  scores   - View the best runs
  config   - Show or create the settings file

Examples:
  castle
  castle play --seed 42
  castle play --difficulty hard
  castle scores
  castle config init`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings file (default ~/.castle/game.cfg)")
	rootCmd.PersistentFlags().StringVar(&flagTunables, "tunables", "", "Path to dungeon tunables YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default ~/.castle/castle.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset overriding enemy_spawn_rate: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// session bundles everything a run needs.
type session struct {
	settings config.Settings
	tunables config.Tunables
	logger   *log.Logger
	store    *storage.Store
	closers  []io.Closer
}

// openSession loads settings and tunables, starts logging and opens the
// store. A store that cannot be opened is reported and skipped.
func openSession() (*session, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.FilePath = flagLogFile
	if logCfg.FilePath == "" {
		logCfg.FilePath = logging.DefaultLogPath()
	}
	logCfg.Level = flagLogLevel
	logger, logCloser := logging.New(logCfg)

	s := &session{
		settings: settings,
		logger:   logger,
		closers:  []io.Closer{logCloser},
	}

	tunables, err := config.LoadTunables(flagTunables)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("cannot load tunables", "path", flagTunables, "err", err)
	}
	s.tunables = tunables

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("storage unavailable", "path", flagDBPath, "err", err)
	} else {
		s.store = store
		s.closers = append(s.closers, store)
	}

	return s, nil
}

// Close releases the store and the log file.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Best-effort cleanup on exit
		s.closers[i].Close()
	}
}

// loadSettings reads the settings file and applies --difficulty.
func loadSettings() (config.Settings, error) {
	path := settingsPath()
	settings, err := config.LoadSettings(path)
	if err != nil {
		return settings, fmt.Errorf("cannot load settings %s: %w", path, err)
	}

	if flagDifficulty != "" {
		rate, ok := config.SpawnRateForPreset(config.DifficultyPreset(flagDifficulty))
		if !ok {
			return settings, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		settings.EnemySpawnRate = rate
	}
	return settings, nil
}

func settingsPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultSettingsPath()
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
