package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultFrameRate = 60
	defaultLogLevel  = "warn"
)

type Config struct {
	Dir       string
	DataDir   string
	DBPath    string
	LogPath   string
	ExportDir string
	LogLevel  string
	FrameRate int
}

// fileConfig mirrors the optional config.yaml in the data dir.
type fileConfig struct {
	LogLevel  string `yaml:"log_level"`
	FrameRate int    `yaml:"frame_rate"`
}

func New(dir string) (Config, error) {
	if dir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	dataDir := filepath.Join(dir, ".goalcheer")
	cfg := Config{
		Dir:       dir,
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, "goals.db"),
		LogPath:   filepath.Join(dataDir, "goalcheer.log"),
		ExportDir: dir,
		LogLevel:  defaultLogLevel,
		FrameRate: defaultFrameRate,
	}
	if err := cfg.load(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	if level := os.Getenv("GOALCHEER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

func (c *Config) load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	file := fileConfig{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.FrameRate < 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", file.FrameRate)
	}
	if file.FrameRate > 0 {
		c.FrameRate = file.FrameRate
	}
	return nil
}
