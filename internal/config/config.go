// Package config предоставляет структуры и функции для загрузки конфигурации
// клиента и локального стаба бэкенда.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек обоих бинарников.
type Config struct {
	Env     string `yaml:"env" env:"ENV" env-default:"local"`
	Client  `yaml:"client"`
	DevStub `yaml:"devstub"`
}

// Client структура для настройки клиента API.
type Client struct {
	BaseURL        string        `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:8082/api"`
	Timeout        time.Duration `yaml:"timeout" env-default:"30s"`
	CredentialFile string        `yaml:"credential_file" env:"CREDENTIAL_FILE"`
}

// DevStub структура для настройки локального стаба бэкенда.
type DevStub struct {
	Address      string        `yaml:"address" env-default:":8082"`
	TimeoutHTTP  time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY" env-default:"devstub-secret"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"168h"`
	RateLimit    float64       `yaml:"rate_limit" env-default:"10"`
	RateBurst    int           `yaml:"rate_burst" env-default:"20"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH, при ошибке завершает процесс.
// Если CONFIG_PATH не задан, используются значения по умолчанию и переменные окружения.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		applyDefaults(&cfg)
		return &cfg
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults заполняет поля, которые нельзя выразить через env-default.
func applyDefaults(cfg *Config) {
	if cfg.CredentialFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.CredentialFile = dir + string(os.PathSeparator) + "valuer" + string(os.PathSeparator) + "credential.json"
	}
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Client:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"  CredentialFile: %s\n"+
			"DevStub:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"  TokenTTL: %s\n",
		c.Env,
		c.BaseURL,
		c.Timeout,
		c.CredentialFile,
		c.Address,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
	)
}
