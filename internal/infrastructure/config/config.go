package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	// Driver seleciona o adapter de persistência: "postgres" ou "sqlite"
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type RedisConfig struct {
	// URL opcional; quando presente, os eventos de placa passam pelo
	// pub/sub do Redis para sincronizar múltiplas instâncias
	URL     string
	Channel string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type RateLimitConfig struct {
	// Limite por IP para tentativas de login
	LoginRPS   float64
	LoginBurst int
}

type SeedConfig struct {
	// DefaultUsers habilita o seeding dos usuários padrão no primeiro boot
	DefaultUsers bool
}

// Load carrega as configurações do arquivo .env e do ambiente
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// O .env é opcional em produção; variáveis de ambiente bastam
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("ENV", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_SQLITE_PATH", "./database.db")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)
	viper.SetDefault("REDIS_CHANNEL", "placasafe:events")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "12h")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("LOGIN_RATE_RPS", 1.0)
	viper.SetDefault("LOGIN_RATE_BURST", 5)
	viper.SetDefault("SEED_DEFAULT_USERS", true)

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY: %w", err)
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Driver:      viper.GetString("DB_DRIVER"),
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			SQLitePath:  viper.GetString("DB_SQLITE_PATH"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			URL:     viper.GetString("REDIS_URL"),
			Channel: viper.GetString("REDIS_CHANNEL"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			LoginRPS:   viper.GetFloat64("LOGIN_RATE_RPS"),
			LoginBurst: viper.GetInt("LOGIN_RATE_BURST"),
		},
		Seed: SeedConfig{
			DefaultUsers: viper.GetBool("SEED_DEFAULT_USERS"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
