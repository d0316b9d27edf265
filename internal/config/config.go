package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Store      Store      `yaml:"store"`
	JWT        JWT        `yaml:"jwt"`
	Google     Google     `yaml:"google"`
	Upload     Upload     `yaml:"upload"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env-default:"localhost:8081"`
	Timeout      time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowOrigins []string      `yaml:"allow_origins" env-default:"http://localhost:4200"`
}

type Store struct {
	Path string `yaml:"path" env:"STORE_PATH" env-default:"data/easytolearn.db"`
}

type JWT struct {
	SecretKey string        `yaml:"secret_key" env:"JWT_SECRET"`
	AccessTTL time.Duration `yaml:"access_token_ttl" env-default:"12h"`
}

// Google carries the identity-provider project settings; the values are
// build-time configuration for the social-login collaborator.
type Google struct {
	ClientID     string   `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string   `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

type Upload struct {
	MaxBytes int64 `yaml:"max_bytes" env-default:"8388608"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return &cfg
}
