package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultAdminEmail получатель админ-писем, если не задан в конфигурации
const DefaultAdminEmail = "visit@pacohlim.com"

// Config конфигурация сервиса. Передается по ссылке в конструкторы
// компонентов; глобального доступа к конфигурации нет.
type Config struct {
	Server    Server    `toml:"server"`
	Database  Database  `toml:"database"`
	Logs      Logs      `toml:"logs"`
	Metrics   Metrics   `toml:"metrics"`
	Alimtalk  Alimtalk  `toml:"alimtalk"`
	Mailer    Mailer    `toml:"mailer"`
	Scheduler Scheduler `toml:"scheduler"`
}

// Server настройки HTTP-сервера (таймауты в секундах)
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Alimtalk настройки провайдера чат-сообщений
type Alimtalk struct {
	URL               string `toml:"url"`
	Timeout           int    `toml:"timeout"` // секунды
	APIKey            string `toml:"api_key"`
	UserID            string `toml:"user_id"`
	SenderKey         string `toml:"sender_key"`
	Sender            string `toml:"sender"`
	TemplateConfirm   string `toml:"template_confirm"`
	TemplateDayBefore string `toml:"template_day_before"`
	TemplateDayOf     string `toml:"template_day_of"`
	Failover          bool   `toml:"failover"`
}

// Mailer настройки почтового шлюза
type Mailer struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	APIKey  string `toml:"api_key"`
	From    string `toml:"from"`
	AdminTo string `toml:"admin_to"`
}

// Scheduler настройки встроенного планировщика напоминаний
type Scheduler struct {
	Enabled bool   `toml:"enabled"`
	Spec    string `toml:"spec"` // cron-выражение
}

// Load читает конфигурацию из TOML-файла. Перед чтением подхватывается
// файл .env (если существует), после чтения секреты переопределяются
// переменными окружения: DB_PASSWORD, ALIMTALK_API_KEY, MAILER_API_KEY.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ALIMTALK_API_KEY"); v != "" {
		cfg.Alimtalk.APIKey = v
	}
	if v := os.Getenv("MAILER_API_KEY"); v != "" {
		cfg.Mailer.APIKey = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Mailer.AdminTo == "" {
		cfg.Mailer.AdminTo = DefaultAdminEmail
	}
	if cfg.Scheduler.Spec == "" {
		cfg.Scheduler.Spec = "0 * * * *"
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	return nil
}
