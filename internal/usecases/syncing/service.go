// Package syncing orquestra os ciclos de buscar-derivar-publicar contra a API
// da planilha. O coordenador é o único escritor das coleções em memória; os
// componentes de visão derivada apenas leem instantâneos consistentes.
package syncing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha"
	"github.com/agrovale/vendas-dashboard-api/infrastructure/repository"
	"github.com/agrovale/vendas-dashboard-api/internal/config"
	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/pkg/utils"
)

var (
	// ErrNotConfigured bloqueia qualquer operação de dados enquanto o
	// endpoint da API não for configurado
	ErrNotConfigured = errors.New("endpoint da API não configurado")

	// ErrRefreshInFlight é devolvido quando um refresh é disparado com outro
	// ainda em andamento. A estratégia é rejeitar a chamada concorrente em
	// vez de cancelar ou enfileirar: só um refresh fica ativo por vez.
	ErrRefreshInFlight = errors.New("já existe uma sincronização em andamento")
)

// Coordinator expõe o ciclo de sincronização e os fluxos de mutação
type Coordinator interface {
	Refresh(ctx context.Context) error
	CreateOrUpdateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	MarkInstallmentPaid(ctx context.Context, saleID string, installmentNumber int) error
	Status() domain.SyncStatus
	UpdateEndpoint(url string) error
	Endpoint() (string, error)

	Dashboard() DashboardView
	SalesList() []SaleView
	Clients(query string) ClientsView
}

type Service struct {
	cfg        *config.Config
	integrator planilha.Integrator
	settings   repository.SettingsRepository

	// mu protege as coleções e o estado publicado; os resultados das duas
	// buscas são substituídos juntos sob o mesmo lock (ambos-ou-nenhum)
	mu            sync.RWMutex
	sales         []domain.Sale
	installments  []domain.Installment
	state         domain.SyncState
	lastError     error
	lastRefreshAt *time.Time

	// refreshMu guarda o flag de refresh em andamento
	refreshMu  sync.Mutex
	refreshing bool
}

func NewService(
	cfg *config.Config,
	integrator planilha.Integrator,
	settings repository.SettingsRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		settings:   settings,
		state:      domain.SyncIdle,
	}
}

// Endpoint resolve a URL da API: o valor persistido prevalece, com a URL da
// configuração de ambiente como semente inicial
func (s *Service) Endpoint() (string, error) {
	url, err := s.settings.GetAPIURL()
	if err != nil {
		return "", fmt.Errorf("erro ao consultar o endpoint configurado: %w", err)
	}

	if url == "" {
		url = s.cfg.Planilha.URL
	}

	if url == "" {
		return "", ErrNotConfigured
	}

	return url, nil
}

// UpdateEndpoint persiste a nova URL da API informada pelo operador
func (s *Service) UpdateEndpoint(url string) error {
	if err := s.settings.SetAPIURL(url); err != nil {
		return err
	}

	logrus.Info("Endpoint da API da planilha atualizado")
	return nil
}

// Refresh busca vendas e parcelas e substitui as coleções por inteiro.
// As duas buscas correm em paralelo e os resultados são retidos até que ambas
// terminem: nunca se publica um estado com vendas da busca N e parcelas da
// busca N-1. Em caso de falha as coleções anteriores permanecem intactas.
func (s *Service) Refresh(ctx context.Context) error {
	endpoint, err := s.Endpoint()
	if err != nil {
		return err
	}

	s.refreshMu.Lock()
	if s.refreshing {
		s.refreshMu.Unlock()
		return ErrRefreshInFlight
	}
	s.refreshing = true
	s.refreshMu.Unlock()

	defer func() {
		s.refreshMu.Lock()
		s.refreshing = false
		s.refreshMu.Unlock()
	}()

	s.setState(domain.SyncLoading, nil)

	var (
		sales        []domain.Sale
		installments []domain.Installment
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		sales, err = s.integrator.FetchSales(groupCtx, endpoint)
		return err
	})

	if s.cfg.Sync.TrackInstallments {
		group.Go(func() error {
			var err error
			installments, err = s.integrator.FetchInstallments(groupCtx, endpoint)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		s.setState(domain.SyncError, err)
		logrus.WithError(err).Error("Falha na sincronização com a planilha; coleções anteriores mantidas")
		return fmt.Errorf("falha ao atualizar os dados: %w", err)
	}

	now := time.Now()

	s.mu.Lock()
	s.sales = sales
	s.installments = installments
	s.state = domain.SyncReady
	s.lastError = nil
	s.lastRefreshAt = &now
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"sales":        len(sales),
		"installments": len(installments),
	}).Info("Sincronização concluída")

	return nil
}

// CreateOrUpdateSale envia a venda para a planilha. Vendas novas ganham um ID
// gerado aqui; edições levam o rowIndex da linha de origem. O refresh que
// confirma a escrita é agendado com atraso em vez de aguardar a resposta da
// mutação: consistência eventual deliberada, não um defeito.
func (s *Service) CreateOrUpdateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	endpoint, err := s.Endpoint()
	if err != nil {
		return domain.Sale{}, err
	}

	if sale.ID == "" {
		id, err := utils.NewSaleID()
		if err != nil {
			return domain.Sale{}, fmt.Errorf("erro ao gerar o ID da venda: %w", err)
		}
		sale.ID = id
	}

	if err := s.integrator.SaveSale(ctx, endpoint, sale); err != nil {
		// Estado local intocado: o formulário permanece válido para reenvio
		return domain.Sale{}, err
	}

	s.scheduleRefresh(s.cfg.Sync.SaveSettleDelay)

	return sale, nil
}

// MarkInstallmentPaid registra o pagamento de uma parcela. Não há atualização
// otimista: o estado local só muda após um refresh confirmado.
func (s *Service) MarkInstallmentPaid(ctx context.Context, saleID string, installmentNumber int) error {
	endpoint, err := s.Endpoint()
	if err != nil {
		return err
	}

	if saleID == "" || installmentNumber < 1 {
		return fmt.Errorf("identificação de parcela inválida: venda=%q parcela=%d", saleID, installmentNumber)
	}

	if err := s.integrator.PayInstallment(ctx, endpoint, saleID, installmentNumber); err != nil {
		return err
	}

	s.scheduleRefresh(s.cfg.Sync.PaySettleDelay)

	return nil
}

// Status devolve o retrato atual do coordenador
func (s *Service) Status() domain.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := domain.SyncStatus{
		State:             s.state,
		LastRefreshAt:     s.lastRefreshAt,
		SalesCount:        len(s.sales),
		InstallmentsCount: len(s.installments),
	}

	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}

// scheduleRefresh agenda um refresh após o tempo de assentamento da planilha.
// Erros aqui só geram log: a mutação já foi aceita e o operador pode atualizar
// manualmente se o refresh automático falhar.
func (s *Service) scheduleRefresh(delay time.Duration) {
	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := s.Refresh(ctx); err != nil {
			if errors.Is(err, ErrRefreshInFlight) {
				logrus.Debug("Refresh pós-mutação ignorado: sincronização já em andamento")
				return
			}
			logrus.WithError(err).Warn("Falha no refresh pós-mutação")
		}
	})
}

func (s *Service) setState(state domain.SyncState, err error) {
	s.mu.Lock()
	s.state = state
	s.lastError = err
	s.mu.Unlock()
}

// snapshot devolve uma leitura consistente das duas coleções
func (s *Service) snapshot() ([]domain.Sale, []domain.Installment) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sales, s.installments
}
