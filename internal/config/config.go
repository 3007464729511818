// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Scene    SceneConfig    `yaml:"scene"`
	Controls ControlsConfig `yaml:"controls"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// MeshConfig holds surface tessellation settings. Higher values give
// smoother shapes at the cost of per-frame rebuild time.
type MeshConfig struct {
	Stacks int `yaml:"stacks"`
	Slices int `yaml:"slices"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	TexturePath string `yaml:"texture_path"`
}

// ControlsConfig holds camera control tuning.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
}

// GameConfig holds miscellaneous runtime settings.
type GameConfig struct {
	ShowFPS bool `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Mesh: MeshConfig{
			Stacks: 64,
			Slices: 64,
		},
		Scene: SceneConfig{
			TexturePath: "assets/solid_yellow.png",
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.1,
			MoveSpeed:        2.5,
		},
		Game: GameConfig{
			ShowFPS: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// sanitize replaces out-of-range values with their defaults so a bad
// config file cannot produce a degenerate mesh or a frozen camera.
func (c *Config) sanitize() {
	def := Default()
	if c.Graphics.Width <= 0 {
		c.Graphics.Width = def.Graphics.Width
	}
	if c.Graphics.Height <= 0 {
		c.Graphics.Height = def.Graphics.Height
	}
	if c.Mesh.Stacks < 2 {
		c.Mesh.Stacks = def.Mesh.Stacks
	}
	if c.Mesh.Slices < 3 {
		c.Mesh.Slices = def.Mesh.Slices
	}
	if c.Controls.MouseSensitivity <= 0 {
		c.Controls.MouseSensitivity = def.Controls.MouseSensitivity
	}
	if c.Controls.MoveSpeed <= 0 {
		c.Controls.MoveSpeed = def.Controls.MoveSpeed
	}
}
