// Package config defines the typed configuration sections shared across
// the application.
package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	Password  PasswordConfig  `mapstructure:"password"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Cookie    CookieConfig    `mapstructure:"cookie"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// RateLimitConfig bounds failed login attempts per email address.
type RateLimitConfig struct {
	LoginMaxAttempts  int `mapstructure:"login_max_attempts"`
	LoginWindowMinute int `mapstructure:"login_window_minutes"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UploadConfig governs attachment storage and validation limits.
type UploadConfig struct {
	Dir         string `mapstructure:"dir"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// ReportConfig carries the fixed strings stamped on generated reports.
type ReportConfig struct {
	Organization string `mapstructure:"organization"`
	FooterNote   string `mapstructure:"footer_note"`
}
