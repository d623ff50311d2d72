package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type App struct {
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type ServerConfig struct {
	Host         string        `env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `env:"HTTP_PORT" env-default:"8080"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	CORSOrigins  string        `env:"CORS_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173"`
}

// LibraryConfig names the two root directories tracks live in and the genre
// allow-list applied by the tag codec. Both directories must exist before
// the process starts.
type LibraryConfig struct {
	InputDir  string `env:"INPUT_DIR" env-default:"./input"`
	OutputDir string `env:"OUTPUT_DIR" env-default:"./output"`
	Genres    string `env:"GENRE_ALLOWLIST" env-default:"bachata,salsa"`
}

type Config struct {
	Server  ServerConfig
	App     App
	Library LibraryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Library.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// GenreAllowList returns the configured allow-list, lowercased, deduplicated
// and sorted ascending.
func (c *LibraryConfig) GenreAllowList() []string {
	seen := make(map[string]struct{})
	var genres []string
	for _, g := range strings.Split(c.Genres, ",") {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}

func (c *LibraryConfig) validate() error {
	for _, dir := range []string{c.InputDir, c.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("root directory %q is not accessible: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("root directory %q is not a directory", dir)
		}
	}
	return nil
}
