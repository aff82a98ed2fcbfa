package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
	Srv      *Serviceconfig
	App      *Appconfig
	Log      *Loggerconfig
}

type DBconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RabbitMqconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

type Serviceconfig struct {
	BackofficePort string
}

// Appconfig holds the signing configuration consumed by the token service.
// Secret, algorithm and TTL are fixed at startup; there is no key rotation.
type Appconfig struct {
	JwtSecret       string
	JwtAlgorithm    string
	TokenTTLMinutes int
}

type Loggerconfig struct {
	Level string
}

func New() (*Config, error) {
	// Optional .env for local development; real environment wins.
	_ = godotenv.Load()

	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("invalid %s=%q, using default %v\n", key, valStr, def)
			return def
		}
		return val
	}

	cnf := &Config{
		DB: &DBconfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "backoffice_user"),
			Password: getEnv("DB_PASSWORD", "backoffice_pass"),
			Database: getEnv("DB_NAME", "backoffice_db"),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		},
		Srv: &Serviceconfig{
			BackofficePort: getEnv("BACKOFFICE_PORT", "8080"),
		},
		App: &Appconfig{
			JwtSecret:       getEnv("SECRET_KEY", "super-secret-development-key"),
			JwtAlgorithm:    getEnv("JWT_ALGORITHM", "HS256"),
			TokenTTLMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	return cnf, nil
}
