package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultSourceURL        = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"
	defaultPhotoPlaceholder = "/placeholder.svg"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Source SourceConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SourceConfig describes where the doctor dataset comes from and how long
// the cached copy stays valid.
type SourceConfig struct {
	URL              string
	Timeout          time.Duration
	CacheTTL         time.Duration
	PhotoPlaceholder string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Environment variables alone are enough when no .env file is shipped.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	sourceTimeout, err := time.ParseDuration(viper.GetString("SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 10 * time.Second
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = time.Hour
	}

	sourceURL := viper.GetString("SOURCE_URL")
	if sourceURL == "" {
		sourceURL = defaultSourceURL
	}

	placeholder := viper.GetString("PHOTO_PLACEHOLDER")
	if placeholder == "" {
		placeholder = defaultPhotoPlaceholder
	}

	port := viper.GetString("APP_PORT")
	if port == "" {
		port = "8080"
	}

	config := &Config{
		App: AppConfig{
			Port: port,
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Source: SourceConfig{
			URL:              sourceURL,
			Timeout:          sourceTimeout,
			CacheTTL:         cacheTTL,
			PhotoPlaceholder: placeholder,
		},
	}

	return config, nil
}
