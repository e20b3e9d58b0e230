package config

// Config is the contents of a lowcode.yaml file.
type Config struct {
	Version  string        `yaml:"version" validate:"required,semver"`
	Log      LogConfig     `yaml:"log"`
	Catalogs []string      `yaml:"catalogs" validate:"dive,catalog_path"`
	Render   RenderConfig  `yaml:"render"`
	Preview  PreviewConfig `yaml:"preview"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

// RenderConfig controls HTML output.
type RenderConfig struct {
	// Development turns on warnings for silently defaulted props.
	Development bool   `yaml:"development"`
	ClassPrefix string `yaml:"class_prefix" validate:"omitempty,class_prefix"`
	Standalone  bool   `yaml:"standalone"`
}

// PreviewConfig controls the terminal wireframe.
type PreviewConfig struct {
	Width int `yaml:"width" validate:"omitempty,min=20,max=400"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Log: LogConfig{
			Level: "warn",
			Human: true,
		},
		Render: RenderConfig{
			ClassPrefix: "lc",
		},
		Preview: PreviewConfig{
			Width: 100,
		},
	}
}
