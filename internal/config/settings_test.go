package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, s Settings)
	}{
		{
			name:  "empty input keeps defaults",
			input: "",
			check: func(t *testing.T, s Settings) {
				if s != DefaultSettings() {
					t.Errorf("got %+v, expected defaults", s)
				}
			},
		},
		{
			name:  "all keys",
			input: "use_colors=0\nshow_tutorial_tips=0\nstarting_hp=150\nenemy_spawn_rate=8\nquit_key=x\nhelp_key=h\nplayer_name=Aria\n",
			check: func(t *testing.T, s Settings) {
				want := Settings{
					StartingHP:     150,
					EnemySpawnRate: 8,
					QuitKey:        'x',
					HelpKey:        'h',
					PlayerName:     "Aria",
				}
				if s != want {
					t.Errorf("got %+v, expected %+v", s, want)
				}
			},
		},
		{
			name:  "comments blank malformed and unknown lines are skipped",
			input: "# comment\n\nstarting_hp\n=5\nfoo=bar\nstarting_hp=abc\nenemy_spawn_rate=\nstarting_hp=120\n",
			check: func(t *testing.T, s Settings) {
				if s.StartingHP != 120 {
					t.Errorf("StartingHP = %d, expected 120", s.StartingHP)
				}
				if s.EnemySpawnRate != 4 {
					t.Errorf("EnemySpawnRate = %d, expected default 4", s.EnemySpawnRate)
				}
			},
		},
		{
			name:  "numbers with trailing text",
			input: "starting_hp=90hp\n",
			check: func(t *testing.T, s Settings) {
				if s.StartingHP != 90 {
					t.Errorf("StartingHP = %d, expected 90", s.StartingHP)
				}
			},
		},
		{
			name:  "keys take the first character",
			input: "quit_key=exit\n",
			check: func(t *testing.T, s Settings) {
				if s.QuitKey != 'e' {
					t.Errorf("QuitKey = %q, expected 'e'", s.QuitKey)
				}
			},
		},
		{
			name:  "spawn rate is clamped",
			input: "enemy_spawn_rate=42\n",
			check: func(t *testing.T, s Settings) {
				if s.EnemySpawnRate != 10 {
					t.Errorf("EnemySpawnRate = %d, expected 10", s.EnemySpawnRate)
				}
			},
		},
		{
			name:  "long player name is truncated",
			input: "player_name=" + strings.Repeat("n", 40) + "\n",
			check: func(t *testing.T, s Settings) {
				if len(s.PlayerName) != MaxPlayerNameLen {
					t.Errorf("len(PlayerName) = %d, expected %d", len(s.PlayerName), MaxPlayerNameLen)
				}
			},
		},
		{
			name:  "non-positive starting hp falls back",
			input: "starting_hp=-5\n",
			check: func(t *testing.T, s Settings) {
				if s.StartingHP != 100 {
					t.Errorf("StartingHP = %d, expected 100", s.StartingHP)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseSettings(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ParseSettings() error: %v", err)
			}
			tc.check(t, s)
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.cfg"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, expected defaults", s)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.cfg")

	want := DefaultSettings()
	want.UseColors = false
	want.StartingHP = 80
	want.EnemySpawnRate = 7
	want.PlayerName = "Rook"

	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	for _, header := range []string{
		"# Castle of no Return - Configuration File",
		"# Display Settings",
		"# Gameplay Settings",
		"# Controls (single character)",
		"# Player Info",
	} {
		if !strings.Contains(string(data), header) {
			t.Errorf("saved file is missing %q", header)
		}
	}

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if got != want {
		t.Errorf("loaded %+v, expected %+v", got, want)
	}
}

func TestSettingsPrint(t *testing.T) {
	var buf bytes.Buffer
	DefaultSettings().Print(&buf)

	out := buf.String()
	for _, line := range []string{
		"=== Current Configuration ===",
		"Use Colors: Yes",
		"Starting HP: 100",
		"Enemy Spawn Rate: 4 (normal)",
		"Quit Key: 'q'",
		"Help Key: '?'",
		"Player Name: Hero",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("Print() output is missing %q:\n%s", line, out)
		}
	}
}
