package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	API       API       `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Sandbox   Sandbox   `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// API aponta para o backend REST consumido pelo dashboard
type API struct {
	URL     string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"api_timeout"`
	// Token opcional para restaurar uma sessão sem passar pelo login
	Token string `mapstructure:"api_token"`
}

type Dashboard struct {
	AutoRefreshEnabled       bool   `mapstructure:"dashboard_auto_refresh_enabled"`
	NotificationsRefreshCron string `mapstructure:"dashboard_notifications_refresh_cron"`
	MetricsRefreshCron       string `mapstructure:"dashboard_metrics_refresh_cron"`
	DefaultRangeDays         int    `mapstructure:"dashboard_default_range_days"`
}

type Sandbox struct {
	Host      string        `mapstructure:"sandbox_host"`
	Port      string        `mapstructure:"sandbox_port"`
	SecretKey string        `mapstructure:"sandbox_secret_key"`
	TokenTTL  time.Duration `mapstructure:"sandbox_token_ttl"`
	SeedDemo  bool          `mapstructure:"sandbox_seed_demo"`

	// Origens liberadas no CORS, separadas por vírgula
	AllowedOrigins []string `mapstructure:"sandbox_allowed_origins"`

	DailySyncEnabled       bool   `mapstructure:"sandbox_daily_sync_enabled"`
	DailySyncCron          string `mapstructure:"sandbox_daily_sync_cron"`
	DailySyncMaxConcurrent int    `mapstructure:"sandbox_daily_sync_max_concurrent"`
}

// Database é opcional: sem DATABASE_URL o sandbox guarda tudo em memória
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("API_URL", "http://localhost:8000")
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("API_TOKEN", "")

	viper.SetDefault("DASHBOARD_AUTO_REFRESH_ENABLED", false)
	viper.SetDefault("DASHBOARD_NOTIFICATIONS_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DASHBOARD_METRICS_REFRESH_CRON", "0 * * * *")         // A cada hora cheia
	viper.SetDefault("DASHBOARD_DEFAULT_RANGE_DAYS", 0)                     // 0 = desde o primeiro dia do mês

	viper.SetDefault("SANDBOX_HOST", "localhost")
	viper.SetDefault("SANDBOX_PORT", "8000")
	viper.SetDefault("SANDBOX_SECRET_KEY", "change-me") // ONLY LOCAL
	viper.SetDefault("SANDBOX_TOKEN_TTL", "24h")
	viper.SetDefault("SANDBOX_SEED_DEMO", false)
	viper.SetDefault("SANDBOX_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("SANDBOX_DAILY_SYNC_ENABLED", true)
	viper.SetDefault("SANDBOX_DAILY_SYNC_CRON", "0 3 * * *") // Todos os dias às 03:00 UTC
	viper.SetDefault("SANDBOX_DAILY_SYNC_MAX_CONCURRENT", 4)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "") // ex.: localhost:5432/insights?sslmode=disable
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Sandbox.DailySyncMaxConcurrent < 1 {
		config.Sandbox.DailySyncMaxConcurrent = 1
	}

	if config.Dashboard.DefaultRangeDays < 0 {
		logrus.Warnf("DASHBOARD_DEFAULT_RANGE_DAYS inválido (%d), usando o mês corrente", config.Dashboard.DefaultRangeDays)
		config.Dashboard.DefaultRangeDays = 0
	}

	if config.Database.URL != "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// ParseLogLevel converte LOG_LEVEL, caindo para info quando o valor é inválido
func (c *Config) ParseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.App.LogLevel)
	if err != nil {
		logrus.Warnf("LOG_LEVEL inválido (%q), usando info", c.App.LogLevel)
		return logrus.InfoLevel
	}

	return level
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
