package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Planilha    Planilha    `mapstructure:",squash"`
	Sync        Sync        `mapstructure:",squash"`
	AutoRefresh AutoRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Path string `mapstructure:"database_path"`
}

// Planilha configura a integração com o endpoint do Apps Script. A URL pode
// ser semeada por ambiente, mas a fonte de verdade em runtime é o repositório
// de configurações: o operador troca o endpoint pela própria API.
type Planilha struct {
	URL string `mapstructure:"planilha_url"`
}

type Sync struct {
	// Atraso entre uma mutação e o refresh que confirma a durabilidade.
	// A planilha demora a assentar a escrita, por isso o refresh não é
	// disparado imediatamente após o POST.
	SaveSettleDelay time.Duration `mapstructure:"sync_save_settle_delay"`
	PaySettleDelay  time.Duration `mapstructure:"sync_pay_settle_delay"`
	// TrackInstallments desliga a busca de parcelas na variante reduzida do
	// sistema, em que só a aba de vendas existe na planilha
	TrackInstallments bool `mapstructure:"sync_track_installments"`
}

type AutoRefresh struct {
	CronSchedule string `mapstructure:"auto_refresh_cron"`
	Enabled      bool   `mapstructure:"auto_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_PATH", "vendas.db")

	viper.SetDefault("PLANILHA_URL", "")

	viper.SetDefault("SYNC_SAVE_SETTLE_DELAY", "1500ms") // tempo para a planilha assentar um saveSale
	viper.SetDefault("SYNC_PAY_SETTLE_DELAY", "1000ms")  // payInstallment assenta mais rápido
	viper.SetDefault("SYNC_TRACK_INSTALLMENTS", true)

	viper.SetDefault("AUTO_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("AUTO_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
