package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	SessionSecret string `mapstructure:"SESSION_SECRET"`

	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	DefaultPicture string `mapstructure:"DEFAULT_PICTURE"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`

	DBMaxOpenConns           int `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns           int `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetimeSeconds int `mapstructure:"DB_CONN_MAX_LIFETIME_SECONDS"`
	DBConnMaxIdleTimeSeconds int `mapstructure:"DB_CONN_MAX_IDLE_SECONDS"`
}

func Default() Config {
	return Config{
		Port:                     "8080",
		LogLevel:                 "info",
		SessionSecret:            "dev-session-secret",
		AdminUsername:            "admin",
		AdminPassword:            "password123",
		UploadDir:                "static/images",
		DefaultPicture:           "default.jpg",
		MaxUploadBytes:           10 << 20,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

// Load reads configuration from a .env file and environment variables,
// falling back to Default for anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("PORT", defaults.Port)
	v.SetDefault("LOG_LEVEL", defaults.LogLevel)
	v.SetDefault("SESSION_SECRET", defaults.SessionSecret)
	v.SetDefault("ADMIN_USERNAME", defaults.AdminUsername)
	v.SetDefault("ADMIN_PASSWORD", defaults.AdminPassword)
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("UPLOAD_DIR", defaults.UploadDir)
	v.SetDefault("DEFAULT_PICTURE", defaults.DefaultPicture)
	v.SetDefault("MAX_UPLOAD_BYTES", defaults.MaxUploadBytes)
	v.SetDefault("DB_MAX_OPEN_CONNS", defaults.DBMaxOpenConns)
	v.SetDefault("DB_MAX_IDLE_CONNS", defaults.DBMaxIdleConns)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", defaults.DBConnMaxLifetimeSeconds)
	v.SetDefault("DB_CONN_MAX_IDLE_SECONDS", defaults.DBConnMaxIdleTimeSeconds)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return defaults, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, err
	}
	return cfg, nil
}
