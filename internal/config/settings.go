package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MaxPlayerNameLen is the longest player name kept from the settings file.
const MaxPlayerNameLen = 31

// SettingsFile is the default settings file name under HomeDir.
const SettingsFile = "game.cfg"

// Settings are the player-facing options read from a key=value file.
type Settings struct {
	UseColors        bool
	ShowTutorialTips bool
	StartingHP       int
	EnemySpawnRate   int
	QuitKey          rune
	HelpKey          rune
	PlayerName       string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		UseColors:        true,
		ShowTutorialTips: true,
		StartingHP:       100,
		EnemySpawnRate:   4,
		QuitKey:          'q',
		HelpKey:          '?',
		PlayerName:       "Hero",
	}
}

// DefaultSettingsPath returns ~/.castle/game.cfg, or game.cfg in the working
// directory when home is unavailable.
func DefaultSettingsPath() string {
	if dir := HomeDir(); dir != "" {
		return filepath.Join(dir, SettingsFile)
	}
	return SettingsFile
}

// Difficulty returns the preset of the configured spawn rate.
func (s Settings) Difficulty() DifficultyPreset {
	return PresetForSpawnRate(s.EnemySpawnRate)
}

// Normalize clamps values into their valid ranges.
func (s *Settings) Normalize() {
	d := DefaultSettings()
	if s.StartingHP <= 0 {
		s.StartingHP = d.StartingHP
	}
	s.EnemySpawnRate = clampSpawnRate(s.EnemySpawnRate)
	if s.QuitKey == 0 {
		s.QuitKey = d.QuitKey
	}
	if s.HelpKey == 0 {
		s.HelpKey = d.HelpKey
	}
	s.PlayerName = truncateName(s.PlayerName)
	if s.PlayerName == "" {
		s.PlayerName = d.PlayerName
	}
}

// LoadSettings reads settings from path on top of the defaults.
// A missing file yields the defaults with no error.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("config: open settings %s: %w", path, err)
	}
	defer f.Close()

	s, err := ParseSettings(f)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("config: read settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings reads key=value lines on top of the defaults.
// Comments, blank lines, malformed lines and unknown keys are skipped.
func ParseSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		s.apply(key, value)
	}
	if err := sc.Err(); err != nil {
		return DefaultSettings(), err
	}

	s.Normalize()
	return s, nil
}

func (s *Settings) apply(key, value string) {
	switch key {
	case "use_colors":
		if n, ok := atoi(value); ok {
			s.UseColors = n != 0
		}
	case "show_tutorial_tips":
		if n, ok := atoi(value); ok {
			s.ShowTutorialTips = n != 0
		}
	case "starting_hp":
		if n, ok := atoi(value); ok {
			s.StartingHP = n
		}
	case "enemy_spawn_rate":
		if n, ok := atoi(value); ok {
			s.EnemySpawnRate = n
		}
	case "quit_key":
		s.QuitKey = []rune(value)[0]
	case "help_key":
		s.HelpKey = []rune(value)[0]
	case "player_name":
		s.PlayerName = value
	}
}

// atoi parses the leading integer of s, ignoring trailing garbage.
// ok is false when s does not start with a number.
func atoi(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func truncateName(name string) string {
	r := []rune(name)
	if len(r) > MaxPlayerNameLen {
		r = r[:MaxPlayerNameLen]
	}
	return string(r)
}

// SaveSettings writes s to path, creating parent directories.
func SaveSettings(path string, s Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create settings %s: %w", path, err)
	}
	if err := WriteSettings(f, s); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("config: write settings %s: %w", path, err)
	}
	return f.Close()
}

// WriteSettings renders s in the settings file layout.
func WriteSettings(w io.Writer, s Settings) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Castle of no Return - Configuration File")
	fmt.Fprintln(bw, "# Edit values below to customize your game")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "# Display Settings")
	fmt.Fprintf(bw, "use_colors=%d\n", boolInt(s.UseColors))
	fmt.Fprintf(bw, "show_tutorial_tips=%d\n", boolInt(s.ShowTutorialTips))

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# Gameplay Settings")
	fmt.Fprintf(bw, "starting_hp=%d\n", s.StartingHP)
	fmt.Fprintf(bw, "enemy_spawn_rate=%d\n", s.EnemySpawnRate)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# Controls (single character)")
	fmt.Fprintf(bw, "quit_key=%c\n", s.QuitKey)
	fmt.Fprintf(bw, "help_key=%c\n", s.HelpKey)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# Player Info")
	fmt.Fprintf(bw, "player_name=%s\n", s.PlayerName)

	return bw.Flush()
}

// Print writes a human-readable summary of s.
func (s Settings) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Current Configuration ===")
	fmt.Fprintf(w, "Use Colors: %s\n", yesNo(s.UseColors))
	fmt.Fprintf(w, "Show Tips: %s\n", yesNo(s.ShowTutorialTips))
	fmt.Fprintf(w, "Starting HP: %d\n", s.StartingHP)
	fmt.Fprintf(w, "Enemy Spawn Rate: %d (%s)\n", s.EnemySpawnRate, s.Difficulty())
	fmt.Fprintf(w, "Quit Key: '%c'\n", s.QuitKey)
	fmt.Fprintf(w, "Help Key: '%c'\n", s.HelpKey)
	fmt.Fprintf(w, "Player Name: %s\n", s.PlayerName)
	fmt.Fprintln(w, "============================")
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
