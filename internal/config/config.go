package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret        string `yaml:"jwt_secret"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
	} `yaml:"auth"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Auth.AccessTTLMinutes == 0 {
		cfg.Auth.AccessTTLMinutes = 15
	}
	if cfg.Auth.JWTSecret == "" {
		panic("auth.jwt_secret is required in config.yaml")
	}
	return &cfg
}
