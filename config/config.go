package config

import "os"

var Conf Config

type Config struct {
	Application Application `yaml:"application" json:"application"`
}

type Application struct {
	DisplayName string     `yaml:"display-name" json:"display_name"`
	Server      Server     `yaml:"server" json:"server"`
	Datasource  Datasource `yaml:"datasource" json:"datasource"`
	Migration   string     `yaml:"migration"`
	Security    Security   `yaml:"security" json:"security"`
	ActionID    ActionID   `yaml:"actionid" json:"actionid"`
	Kafka       Kafka      `yaml:"kafka" json:"kafka"`
}

type Server struct {
	ContextPath   string `yaml:"context-path" json:"context_path"`
	ApiVersion    string `yaml:"api-version" json:"api_version"`
	Port          string `yaml:"port"`
	SecureCookies bool   `yaml:"secure-cookies" json:"secure_cookies"`
}

type Datasource struct {
	PrimaryURL            string `yaml:"primary-url" json:"primary_url"`
	MaxIdleConnections    int    `yaml:"max-idle-connections" json:"max_idle_connections"`
	MaxOpenConnections    int    `yaml:"max-open-connections" json:"max_open_connections"`
	ConnectionMaxLifetime int    `yaml:"connection-max-lifetime" json:"connection_max_lifetime"`
}

type Security struct {
	Secret                 string `yaml:"secret" json:"-"`
	Issuer                 string `yaml:"issuer" json:"issuer"`
	TokenValidityInSeconds int    `yaml:"token-validity-in-seconds" json:"token_validity_in_seconds"`
	CookieName             string `yaml:"cookie-name" json:"cookie_name"`
}

// ActionID holds the outbound biometric provider settings.
type ActionID struct {
	BaseURL        string `yaml:"base-url" json:"base_url"`
	CID            string `yaml:"cid" json:"cid"`
	APIKey         string `yaml:"api-key" json:"-"`
	MaxAttempts    int    `yaml:"max-attempts" json:"max_attempts"`
	BaseDelayMs    int    `yaml:"base-delay-ms" json:"base_delay_ms"`
	TimeoutSeconds int    `yaml:"timeout-seconds" json:"timeout_seconds"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" json:"enabled"`
	Brokers []string `yaml:"brokers" json:"brokers"`
	Topic   string   `yaml:"topic" json:"topic"`
}

// ApplyEnvOverrides lets deployment secrets win over the config file. The
// provider API key must never be committed, so it normally arrives only via
// ACTIONID_API_KEY.
func ApplyEnvOverrides() {
	if key := os.Getenv("ACTIONID_API_KEY"); key != "" {
		Conf.Application.ActionID.APIKey = key
	}
	if secret := os.Getenv("AUTH_TOKEN_SECRET"); secret != "" {
		Conf.Application.Security.Secret = secret
	}
}
