package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// AllowedOrigins - Origin-заголовки, с которых принимаем /ws. Пусто - любые.
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		SiteURL      string `yaml:"site_url"`
	} `yaml:"email"`

	Files struct {
		Gateway         string   `yaml:"gateway"`          // IPFS gateway prefix for attachments
		ImageExtensions []string `yaml:"image_extensions"` // rendered inline instead of as a download
	} `yaml:"files"`

	Notifications struct {
		PageSize int `yaml:"page_size"`
	} `yaml:"notifications"`

	Workers struct {
		ExpiryInterval  time.Duration `yaml:"expiry_interval"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
		RetentionDays   int           `yaml:"retention_days"`
	} `yaml:"workers"`

	Locale string `yaml:"locale"`
}

var AppConfig *Config

// Load reads a YAML config file and fills in defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv builds the config from environment variables (test mode).
func FromEnv() *Config {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	if origins := os.Getenv("WS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.Files.Gateway = os.Getenv("FILES_GATEWAY")
	if exts := os.Getenv("IMAGE_EXTENSIONS"); exts != "" {
		cfg.Files.ImageExtensions = strings.Split(exts, ",")
	}
	cfg.Locale = os.Getenv("LOCALE")

	cfg.applyDefaults()
	return &cfg
}

// LoadConfig заполняет AppConfig. Если задан DATABASE_URL - конфиг берётся
// из переменных окружения, иначе из CONFIG_PATH (по умолчанию config/config.yaml).
func LoadConfig() error {
	if os.Getenv("DATABASE_URL") != "" {
		AppConfig = FromEnv()
		return nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		if err := LoadConfig(); err != nil {
			AppConfig = FromEnv()
		}
	}
	return AppConfig
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.JWT.TTL == 0 {
		c.JWT.TTL = 60
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Files.Gateway == "" {
		c.Files.Gateway = "https://ipfs.infura.io/ipfs"
	}
	if len(c.Files.ImageExtensions) == 0 {
		c.Files.ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "svg", "webp", "bmp"}
	}
	if c.Notifications.PageSize == 0 {
		c.Notifications.PageSize = 10
	}
	if c.Workers.ExpiryInterval == 0 {
		c.Workers.ExpiryInterval = time.Hour
	}
	if c.Workers.CleanupInterval == 0 {
		c.Workers.CleanupInterval = 24 * time.Hour
	}
	if c.Workers.RetentionDays == 0 {
		c.Workers.RetentionDays = 90
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
}

// Address is the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}
