package config

import (
	"fmt"
	"time"
)

// Audio source kinds.
const (
	AudioSourceDir   = "dir"
	AudioSourceMinio = "minio"
)

// Config is the complete runtime configuration, read from the environment.
type Config struct {
	Environment string

	Database DatabaseConfig
	Audio    AudioConfig
	Server   ServerConfig
	OpenAI   OpenAIConfig
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite3".
	Driver          string
	URL             string
	SQLitePath      string
	RequireSSL      bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
	QueryTimeout    time.Duration
}

type AudioConfig struct {
	// Source is "dir" or "minio".
	Source string
	Dir    string
	Minio  MinioConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
	URLExpiry time.Duration
}

type ServerConfig struct {
	Host         string
	Port         string
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type OpenAIConfig struct {
	APIKey   string
	BaseURL  string
	Language string
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the configuration from the process environment. Call LoadEnv
// first to pick up .env files.
func Load() (*Config, error) {
	e := &env{}
	cfg := &Config{
		Environment: e.get("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Driver:          e.get("DATABASE_DRIVER", "sqlite3"),
			URL:             e.get("DATABASE_URL", ""),
			SQLitePath:      e.get("SQLITE_PATH", "data/transcriptions.db"),
			MaxOpenConns:    e.getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    e.getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: e.getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnectTimeout:  e.getDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
			QueryTimeout:    e.getDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		},
		Audio: AudioConfig{
			Source: e.get("AUDIO_SOURCE", AudioSourceDir),
			Dir:    e.get("AUDIO_DIR", "public/audio"),
			Minio: MinioConfig{
				Endpoint:  e.get("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey: e.get("MINIO_ACCESS_KEY", ""),
				SecretKey: e.get("MINIO_SECRET_KEY", ""),
				Bucket:    e.get("MINIO_BUCKET", "audio"),
				Prefix:    e.get("MINIO_PREFIX", ""),
				UseSSL:    e.getBool("MINIO_USE_SSL", false),
				URLExpiry: e.getDuration("MINIO_URL_EXPIRY", time.Hour),
			},
		},
		Server: ServerConfig{
			Host:         e.get("HOST", "0.0.0.0"),
			Port:         e.get("PORT", "3001"),
			StaticDir:    e.get("STATIC_DIR", "dist"),
			ReadTimeout:  e.getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: e.getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  e.getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		OpenAI: OpenAIConfig{
			APIKey:   e.get("OPENAI_API_KEY", ""),
			BaseURL:  e.get("OPENAI_BASE_URL", ""),
			Language: e.get("TRANSCRIBE_LANGUAGE", ""),
		},
	}
	// SSL follows production unless DB_SSL says otherwise.
	cfg.Database.RequireSSL = e.getBool("DB_SSL", cfg.IsProduction())

	if e.err != nil {
		return nil, e.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values Load cannot fix up on its own.
func (c *Config) Validate() error {
	if err := ValidateDriver(c.Database.Driver); err != nil {
		return err
	}
	if c.Database.Driver == "postgres" && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}
	if err := ValidateTimeout(c.Database.QueryTimeout, "database query"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Database.ConnectTimeout, "database connect"); err != nil {
		return err
	}
	if err := ValidatePoolSize(c.Database.MaxOpenConns, c.Database.MaxIdleConns); err != nil {
		return err
	}
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"server read":  c.Server.ReadTimeout,
		"server write": c.Server.WriteTimeout,
		"server idle":  c.Server.IdleTimeout,
	} {
		if err := ValidateTimeout(d, name); err != nil {
			return err
		}
	}

	switch c.Audio.Source {
	case AudioSourceDir:
		if c.Audio.Dir == "" {
			return fmt.Errorf("AUDIO_DIR is required")
		}
	case AudioSourceMinio:
		if c.Audio.Minio.Bucket == "" || c.Audio.Minio.Endpoint == "" {
			return fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET are required for the minio audio source")
		}
	default:
		return fmt.Errorf("AUDIO_SOURCE must be %q or %q, got %q", AudioSourceDir, AudioSourceMinio, c.Audio.Source)
	}
	return nil
}
