package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	RateLimit    RateLimitConfig
	Log          LogConfig
	Availability AvailabilityConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	Enabled     bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	TemplateTTL time.Duration `envconfig:"REDIS_TEMPLATE_TTL" default:"5m"`
	KeyPrefix   string        `envconfig:"REDIS_KEY_PREFIX" default:"availability"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type RateLimitConfig struct {
	Enabled           bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
	MaxClients        int     `envconfig:"RATE_LIMIT_MAX_CLIENTS" default:"10000"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Makassar"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

// AvailabilityConfig replaces the hard-coded reference zone and slot length.
type AvailabilityConfig struct {
	TimeZone    string `envconfig:"AVAILABILITY_TIMEZONE" default:"Asia/Makassar"`
	SlotMinutes int    `envconfig:"AVAILABILITY_SLOT_MINUTES" default:"30"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AvailabilityConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid AVAILABILITY_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c AvailabilityConfig) SlotDuration() (time.Duration, error) {
	if c.SlotMinutes <= 0 {
		return 0, fmt.Errorf("invalid AVAILABILITY_SLOT_MINUTES %d: must be positive", c.SlotMinutes)
	}
	return time.Duration(c.SlotMinutes) * time.Minute, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Enabled:     false,
			TemplateTTL: time.Minute,
			KeyPrefix:   "availability-test",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Makassar",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		Availability: AvailabilityConfig{
			TimeZone:    "Asia/Makassar",
			SlotMinutes: 30,
		},
	}
}
