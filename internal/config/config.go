package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Log      LogConfig      `yaml:"log"`
	Redis    RedisConfig    `yaml:"redis"`
	Ledger   LedgerConfig   `yaml:"ledger"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RedisConfig enables the async maintenance queue when set.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LedgerConfig holds the reputation engine bounds plus the host-side
// clock cadence and sweep schedule.
type LedgerConfig struct {
	ExpirationTicks     uint64 `yaml:"expiration_ticks"`
	TickIntervalSeconds int    `yaml:"tick_interval_seconds"`
	SweepCron           string `yaml:"sweep_cron"`
	SweepBatchLimit     int    `yaml:"sweep_batch_limit"`
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	cfg.applyDefaults()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "reputation.db",
		},
		JWT: JWTConfig{
			Secret:     "reputation-secret-key-change-in-production",
			ExpireHour: 24,
		},
		Log: LogConfig{
			Level: "info",
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			DB:      0,
		},
		Ledger: LedgerConfig{
			ExpirationTicks:     432000,
			TickIntervalSeconds: 6,
			SweepCron:           "@every 5m",
			SweepBatchLimit:     100,
		},
	}
}

// applyDefaults fills fields a partial config file left at zero.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Ledger.ExpirationTicks == 0 {
		c.Ledger.ExpirationTicks = def.Ledger.ExpirationTicks
	}
	if c.Ledger.TickIntervalSeconds == 0 {
		c.Ledger.TickIntervalSeconds = def.Ledger.TickIntervalSeconds
	}
	if c.Ledger.SweepCron == "" {
		c.Ledger.SweepCron = def.Ledger.SweepCron
	}
	if c.Ledger.SweepBatchLimit == 0 {
		c.Ledger.SweepBatchLimit = def.Ledger.SweepBatchLimit
	}
	if c.JWT.ExpireHour == 0 {
		c.JWT.ExpireHour = def.JWT.ExpireHour
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
	if ticks := os.Getenv("LEDGER_EXPIRATION_TICKS"); ticks != "" {
		if v, err := strconv.ParseUint(ticks, 10, 64); err == nil {
			c.Ledger.ExpirationTicks = v
		}
	}
	if spec := os.Getenv("LEDGER_SWEEP_CRON"); spec != "" {
		c.Ledger.SweepCron = spec
	}
}

func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = "config.yaml"
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
