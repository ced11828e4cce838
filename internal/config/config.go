package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/avtodetail/carshop-booking/internal/scheduling"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Shop     ShopConfig     `toml:"shop"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN собирает строку подключения lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TelegramConfig настройки уведомлений в Telegram.
// Пустой токен отключает уведомления.
type TelegramConfig struct {
	Token   string `toml:"token"`
	ChatID  string `toml:"chat_id"`
	Timeout int    `toml:"timeout"` // секунды
}

// ShopConfig настройки мастерской: часовой пояс, расписание, ёмкости боксов
type ShopConfig struct {
	Timezone        string              `toml:"timezone"`
	SlotStepMinutes int                 `toml:"slot_step_minutes"`
	AdminToken      string              `toml:"admin_token"`
	Hours           map[string]DayHours `toml:"hours"`
	Capacities      map[string]int      `toml:"capacities"`
}

// DayHours рабочее окно дня в целых часах
type DayHours struct {
	Open  int `toml:"open"`
	Close int `toml:"close"`
}

// Location загружает часовой пояс магазина
func (s *ShopConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// HoursTable конвертирует расписание в таблицу рабочего календаря.
// День, которого нет в конфиге, считается выходным.
func (s *ShopConfig) HoursTable() (scheduling.HoursTable, error) {
	table := make(scheduling.HoursTable, len(s.Hours))
	for name, hours := range s.Hours {
		day, ok := weekdays[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("config: unknown weekday %q", name)
		}
		if hours.Open < 0 || hours.Close > 24 || hours.Open >= hours.Close {
			return nil, fmt.Errorf("config: invalid hours for %s: %d-%d", name, hours.Open, hours.Close)
		}
		table[day] = scheduling.DayWindow{OpenHour: hours.Open, CloseHour: hours.Close}
	}
	return table, nil
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Shop.Timezone == "" {
		return fmt.Errorf("config: shop.timezone is required")
	}
	if len(c.Shop.Hours) == 0 {
		return fmt.Errorf("config: shop.hours must define at least one business day")
	}
	if _, err := c.Shop.HoursTable(); err != nil {
		return err
	}
	return nil
}
