package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
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

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
}

// EmailConfig carries the SMTP transport settings plus the helpdesk
// department routing table. DepartmentEmails maps a ticket department to
// the mailbox that receives new-enquiry alerts; departments without an
// entry fall back to CentralEmail.
type EmailConfig struct {
	SMTPHost         string            `mapstructure:"smtp_host"`
	SMTPPort         int               `mapstructure:"smtp_port"`
	SMTPUser         string            `mapstructure:"smtp_user"`
	SMTPPassword     string            `mapstructure:"smtp_password"`
	FromAddress      string            `mapstructure:"from_address"`
	FromName         string            `mapstructure:"from_name"`
	CentralEmail     string            `mapstructure:"central_email"`
	DepartmentEmails map[string]string `mapstructure:"department_emails"`
	SendTimeoutSecs  int               `mapstructure:"send_timeout_seconds"`
}

func (e *EmailConfig) SendTimeout() time.Duration {
	if e.SendTimeoutSecs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(e.SendTimeoutSecs) * time.Second
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig limits public ticket submissions per client IP.
type RateLimitConfig struct {
	SubmitPerMinute int `mapstructure:"submit_per_minute"`
}
