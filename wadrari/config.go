package wadrari

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	DB      DBConfig      `toml:"db"`
	Spaces  SpacesConfig  `toml:"spaces"`
	Session SessionConfig `toml:"session"`
	Admin   AdminConfig   `toml:"admin"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type SpacesConfig struct {
	Key        string `toml:"key"`
	Secret     string `toml:"secret"`
	Region     string `toml:"region"`
	Bucket     string `toml:"bucket"`
	MediaRoot  string `toml:"media_root"`
	AvatarRoot string `toml:"avatar_root"`
}

type SessionConfig struct {
	Path string `toml:"path"`
}

// AdminConfig gates privileged operations such as the season reset. This is
// a UI-level gate mirroring the mobile app, not a security boundary.
type AdminConfig struct {
	Username string `toml:"username"`
}
