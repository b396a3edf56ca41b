package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	Ledger   LedgerConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

type LedgerConfig struct {
	RefillIncrement  int           // units per product per elapsed minute
	SnapshotInterval time.Duration // 0 disables periodic snapshots
}

// DatabaseConfig is optional; the journal is only enabled when URL or Host is set.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c DatabaseConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

// DSN returns the connection string, preferring DATABASE_URL over the DB_* parts.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		c.Host, c.User, c.Password, c.Name, c.Port,
	)
}

// RedisConfig is optional; stock events are only published to Redis when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// Load reads .env (if present) and then the process environment.
// Priority: environment variables > .env > built-in defaults.
func Load() (*Config, error) {
	// .env is optional, missing file is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app_name"),
			Env:  v.GetString("app_env"),
			Port: v.GetString("port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Ledger: LedgerConfig{
			RefillIncrement:  v.GetInt("hub_refill_increment"),
			SnapshotInterval: v.GetDuration("snapshot_interval"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("database_url"),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
			Channel:  v.GetString("redis_channel"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "Inventory Hub Ledger v1.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("hub_refill_increment", 50)
	v.SetDefault("snapshot_interval", 5*time.Minute)
	v.SetDefault("db_port", "5432")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_channel", "inventory:stock_events")
}

// Validate checks values that would otherwise surface as confusing runtime behaviour.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Ledger.RefillIncrement < 0 {
		return fmt.Errorf("HUB_REFILL_INCREMENT must be >= 0, got %d", c.Ledger.RefillIncrement)
	}
	if c.Ledger.SnapshotInterval < 0 {
		return fmt.Errorf("SNAPSHOT_INTERVAL must be >= 0, got %s", c.Ledger.SnapshotInterval)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
