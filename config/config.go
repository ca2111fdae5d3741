package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/milk9111/tilepaint/assets"
	"github.com/milk9111/tilepaint/grid"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig     = "TILEPAINT_CONFIG"
	EnvTextureDir = "TILEPAINT_TEXTURE_DIR"
	EnvLogLevel   = "TILEPAINT_LOG_LEVEL"
	EnvWatch      = "TILEPAINT_WATCH"

	DefaultPath = "tilepaint.yaml"
)

// Config describes the surfaces and textures of the painter.
type Config struct {
	Title         string   `yaml:"title"`
	GridSize      int      `yaml:"grid_size"`
	GridWidth     int      `yaml:"grid_width"`
	GridHeight    int      `yaml:"grid_height"`
	PaletteWidth  int      `yaml:"palette_width"`
	PaletteHeight int      `yaml:"palette_height"`
	Textures      []string `yaml:"textures"`
	// TextureDir reads textures from disk instead of the embedded set.
	TextureDir string `yaml:"texture_dir"`
	// Watch reloads textures from TextureDir when they change.
	Watch    bool   `yaml:"watch"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	textures := make([]string, len(assets.DefaultTextures))
	for i, name := range assets.DefaultTextures {
		textures[i] = "/" + name
	}
	return Config{
		Title:         "tilepaint",
		GridSize:      grid.DefaultSize,
		GridWidth:     512,
		GridHeight:    512,
		PaletteWidth:  64,
		PaletteHeight: 256,
		Textures:      textures,
		LogLevel:      "info",
	}
}

// Load reads .env, then the YAML file named by TILEPAINT_CONFIG (or path when
// the variable is unset), then applies environment overrides. A missing file
// leaves the defaults in place; found reports whether one was read. The
// result is not validated so that callers can apply flags first.
func Load(path string) (cfg Config, found bool, err error) {
	// .env is optional.
	_ = godotenv.Load()

	if p := os.Getenv(EnvConfig); p != "" {
		path = p
	}
	cfg = Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, false, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if cfg, err = Parse(data); err != nil {
				return cfg, false, fmt.Errorf("config: %s: %w", path, err)
			}
			found = true
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, found, err
	}
	return cfg, found, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvTextureDir); ok {
		c.TextureDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvWatch); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvWatch, v, err)
		}
		c.Watch = b
	}
	return nil
}

// Validate rejects configurations that cannot be drawn.
func (c Config) Validate() error {
	var problems []string
	if c.GridSize < 1 {
		problems = append(problems, "grid_size must be positive")
	}
	if c.GridWidth < 1 || c.GridHeight < 1 {
		problems = append(problems, "grid surface must be at least 1x1")
	}
	if c.PaletteWidth < 1 || c.PaletteHeight < 1 {
		problems = append(problems, "palette surface must be at least 1x1")
	}
	if len(c.Textures) == 0 {
		problems = append(problems, "at least one texture is required")
	}
	if c.Watch && c.TextureDir == "" {
		problems = append(problems, "watch requires texture_dir")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: invalid: %s", strings.Join(problems, "; "))
	}
	return nil
}
