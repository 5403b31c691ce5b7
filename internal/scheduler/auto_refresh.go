package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/config"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
)

// AutoRefreshConfig representa a configuração do agendador de atualização automática
type AutoRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// AutoRefreshService dispara refreshes periódicos do coordenador de
// sincronização, mantendo o dashboard próximo da planilha mesmo sem ação do
// operador. O coordenador já rejeita refreshes concorrentes, então o job não
// precisa de guarda própria.
type AutoRefreshService struct {
	scheduler   *gocron.Scheduler
	config      AutoRefreshConfig
	coordinator syncing.Coordinator

	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewAutoRefreshService cria uma nova instância do agendador de atualização automática
func NewAutoRefreshService(
	coordinator syncing.Coordinator,
	appConfig *config.Config,
) *AutoRefreshService {
	refreshConfig := AutoRefreshConfig{
		CronSchedule: appConfig.AutoRefresh.CronSchedule,
		Enabled:      appConfig.AutoRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização automática carregada")

	return &AutoRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		coordinator: coordinator,
	}
}

// Start inicia o agendador
func (s *AutoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização automática")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRefresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização automática: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização automática")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AutoRefreshService) runRefresh() {
	s.lastRunStartedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	err := s.coordinator.Refresh(ctx)
	switch {
	case errors.Is(err, syncing.ErrRefreshInFlight):
		logrus.Info("Atualização automática ignorada: sincronização já em andamento")
	case errors.Is(err, syncing.ErrNotConfigured):
		logrus.Info("Atualização automática ignorada: endpoint da API ainda não configurado")
	case err != nil:
		logrus.WithError(err).Error("Falha na atualização automática")
	default:
		s.lastRunCompletedAt = time.Now()
		logrus.WithField("duration", time.Since(s.lastRunStartedAt).String()).
			Info("Atualização automática concluída")
	}
}
