package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Mesh.Stacks != 64 || cfg.Mesh.Slices != 64 {
		t.Errorf("expected 64x64 tessellation, got %dx%d", cfg.Mesh.Stacks, cfg.Mesh.Slices)
	}

	if cfg.Scene.TexturePath == "" {
		t.Error("expected a default texture path")
	}

	if cfg.Controls.MouseSensitivity != 0.1 {
		t.Errorf("expected mouse sensitivity 0.1, got %f", cfg.Controls.MouseSensitivity)
	}
	if cfg.Controls.MoveSpeed != 2.5 {
		t.Errorf("expected move speed 2.5, got %f", cfg.Controls.MoveSpeed)
	}

	if cfg.Game.ShowFPS {
		t.Error("expected show_fps to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

mesh:
  stacks: 32
  slices: 48

scene:
  texture_path: "textures/marble.jpg"

controls:
  mouse_sensitivity: 0.25
  move_speed: 5.0

game:
  show_fps: true

logging:
  level: "debug"
  log_file: "morphoid.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Mesh.Stacks != 32 || cfg.Mesh.Slices != 48 {
		t.Errorf("expected 32x48 tessellation, got %dx%d", cfg.Mesh.Stacks, cfg.Mesh.Slices)
	}

	if cfg.Scene.TexturePath != "textures/marble.jpg" {
		t.Errorf("expected texture path textures/marble.jpg, got %s", cfg.Scene.TexturePath)
	}

	if cfg.Controls.MouseSensitivity != 0.25 {
		t.Errorf("expected mouse sensitivity 0.25, got %f", cfg.Controls.MouseSensitivity)
	}
	if cfg.Controls.MoveSpeed != 5.0 {
		t.Errorf("expected move speed 5.0, got %f", cfg.Controls.MoveSpeed)
	}

	if !cfg.Game.ShowFPS {
		t.Error("expected show_fps to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "morphoid.log" {
		t.Errorf("expected log file 'morphoid.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSanitize(t *testing.T) {
	cfg := Default()
	cfg.Mesh.Stacks = 0
	cfg.Mesh.Slices = -5
	cfg.Controls.MouseSensitivity = 0
	cfg.Controls.MoveSpeed = -1
	cfg.Graphics.Width = 0

	cfg.sanitize()

	if cfg.Mesh.Stacks != 64 || cfg.Mesh.Slices != 64 {
		t.Errorf("expected tessellation reset to 64x64, got %dx%d", cfg.Mesh.Stacks, cfg.Mesh.Slices)
	}
	if cfg.Controls.MouseSensitivity != 0.1 {
		t.Errorf("expected mouse sensitivity reset to 0.1, got %f", cfg.Controls.MouseSensitivity)
	}
	if cfg.Controls.MoveSpeed != 2.5 {
		t.Errorf("expected move speed reset to 2.5, got %f", cfg.Controls.MoveSpeed)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width reset to 1280, got %d", cfg.Graphics.Width)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Game.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "texture flag",
			setup: func() { *flagTexture = "custom.png" },
			verify: func(cfg *Config) {
				if cfg.Scene.TexturePath != "custom.png" {
					t.Errorf("expected texture path custom.png, got %s", cfg.Scene.TexturePath)
				}
			},
			teardown: func() { *flagTexture = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Mesh.Stacks = 96
	cfg.Scene.TexturePath = "saved.png"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Mesh.Stacks != 96 {
		t.Errorf("expected stacks 96 after round trip, got %d", loaded.Mesh.Stacks)
	}
	if loaded.Scene.TexturePath != "saved.png" {
		t.Errorf("expected texture path saved.png after round trip, got %s", loaded.Scene.TexturePath)
	}
}
