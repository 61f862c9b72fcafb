package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// The Negócio block is read-only business data consumed by receipt and report
// templating — it never affects register logic.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Redis (persistence + job queues)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth — single operator, PIN stored as bcrypt hash (see cmd/genhash)
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	OperadorNome       string `mapstructure:"OPERADOR_NOME"`
	OperadorPINHash    string `mapstructure:"OPERADOR_PIN_HASH"`

	// SMTP — receipt mailing
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Negócio
	NomeNegocio    string `mapstructure:"NOME_NEGOCIO"`
	Endereco       string `mapstructure:"ENDERECO"`
	Telefone       string `mapstructure:"TELEFONE"`
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("OPERADOR_NOME", "Operador")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("NOME_NEGOCIO", "Meu Negócio")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/agendapro/comprovantes")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
