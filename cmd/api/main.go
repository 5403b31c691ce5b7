package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/infrastructure/database/sqlite"
	"github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha"
	"github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/planilhaclient"
	"github.com/agrovale/vendas-dashboard-api/infrastructure/repository"
	"github.com/agrovale/vendas-dashboard-api/internal/api"
	"github.com/agrovale/vendas-dashboard-api/internal/config"
	"github.com/agrovale/vendas-dashboard-api/internal/scheduler"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	settingsRepo, err := repository.NewSettingsRepository(conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o repositório de configurações")
	}

	planilhaClient := planilhaclient.NewClient()
	planilhaIntegrator := planilha.New(planilhaClient)

	coordinator := syncing.NewService(cfg, planilhaIntegrator, settingsRepo)

	// Inicia o agendador de atualização automática em background
	autoRefreshService := scheduler.NewAutoRefreshService(coordinator, cfg)
	if err := autoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização automática")
	} else {
		logrus.Info("Agendador de atualização automática iniciado com sucesso")
	}

	server, err := api.New(cfg, coordinator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn abre o banco local de configurações
func dbconn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o banco de configurações")
	}

	logrus.WithField("path", dbConfig.Path).Info("Banco de configurações aberto com sucesso")
	return conn
}
