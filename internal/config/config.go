package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/commission-engine/internal/domain"
)

type Config struct {
	App          App                            `mapstructure:",squash"`
	Server       Server                         `mapstructure:",squash"`
	Dataset      Dataset                        `mapstructure:",squash"`
	Freight      Freight                        `mapstructure:",squash"`
	Calculation  Calculation                    `mapstructure:",squash"`
	Query        Query                          `mapstructure:",squash"`
	Cors         Cors                           `mapstructure:",squash"`
	Marketplaces []domain.MarketplaceDefinition `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	BaseDir  string `mapstructure:"base_dir"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	DataDir          string `mapstructure:"data_dir"`
	ReloadCron       string `mapstructure:"dataset_reload_cron"`
	ReloadEnabled    bool   `mapstructure:"dataset_reload_enabled"`
	MaxConcurrent    int    `mapstructure:"dataset_reload_max_concurrent"`
	RefreshOnRequest bool   `mapstructure:"dataset_refresh_on_request"`
}

type Freight struct {
	TableFile   string `mapstructure:"freight_table_file"`
	DesiColumn  string `mapstructure:"freight_desi_column"`
	PriceColumn string `mapstructure:"freight_price_column"`
}

type Calculation struct {
	DefaultDesiFactor  float64 `mapstructure:"default_desi_factor"`
	DefaultVatRounding string  `mapstructure:"default_vat_rounding"`
}

type Query struct {
	CacheTTL time.Duration `mapstructure:"query_cache_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("BASE_DIR", ".")

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("DATASET_RELOAD_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DATASET_RELOAD_ENABLED", true)
	viper.SetDefault("DATASET_RELOAD_MAX_CONCURRENT", 4)
	viper.SetDefault("DATASET_REFRESH_ON_REQUEST", true) // Verificação de mtime antes de cada requisição

	viper.SetDefault("FREIGHT_TABLE_FILE", "hepsijet_desi.csv")
	viper.SetDefault("FREIGHT_DESI_COLUMN", "desi")
	viper.SetDefault("FREIGHT_PRICE_COLUMN", "hepsijet_try")

	viper.SetDefault("DEFAULT_DESI_FACTOR", 3000)
	viper.SetDefault("DEFAULT_VAT_ROUNDING", "even")

	viper.SetDefault("QUERY_CACHE_TTL", "10m")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5000")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	config.Marketplaces = DefaultMarketplaces()

	logrus.WithFields(logrus.Fields{
		"data_dir":     config.Dataset.DataDir,
		"marketplaces": len(config.Marketplaces),
		"reload_cron":  config.Dataset.ReloadCron,
	}).Info("Configuração carregada")

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
