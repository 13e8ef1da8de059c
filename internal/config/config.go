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

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	DailyClosing DailyClosing `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	SeedCatalog bool   `mapstructure:"seed_catalog"`
}

type Server struct {
	Host      string `mapstructure:"host"`
	Port      string `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

type Database struct {
	DSN               string `mapstructure:"-"`
	Driver            string `mapstructure:"database_driver"`
	Password          string `mapstructure:"database_password"`
	URL               string `mapstructure:"database_url"`
	User              string `mapstructure:"database_user"`
	DropTablesOnStart bool   `mapstructure:"database_drop_tables_on_start"`
}

type Auth struct {
	Secret               string        `mapstructure:"auth_secret"`
	OperatorPasswordHash string        `mapstructure:"auth_operator_password_hash"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DailyClosing struct {
	CronSchedule string `mapstructure:"daily_closing_cron"`
	Enabled      bool   `mapstructure:"daily_closing_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "80")
	viper.SetDefault("STATIC_DIR", "files")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/pdv?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_DROP_TABLES_ON_START", false)

	viper.SetDefault("SEED_CATALOG", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "") // Sem hash o login de operador fica desabilitado
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*") // Qualquer origem

	viper.SetDefault("DAILY_CLOSING_CRON", "0 23 * * *") // Todos os dias às 23h
	viper.SetDefault("DAILY_CLOSING_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: driver de banco inválido: %q", c.Database.Driver)
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: AUTH_TOKEN_TTL deve ser positivo")
	}

	return nil
}

func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
