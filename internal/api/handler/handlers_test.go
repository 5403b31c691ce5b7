package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing/mocks"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

func decodeAPIError(t *testing.T, body io.Reader) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(body).Decode(&apiErr))
	return apiErr
}

func TestSaveSale(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockCoordinator)
		expectedStatus int
		expectedCode   string
		expectedID     string
	}{
		{
			name: "Venda válida é criada e devolve o ID gerado",
			body: `{"clientName": "Maria Souza", "totalValue": 500, "installmentCount": 2}`,
			setup: func(service *mocks.MockCoordinator) {
				service.EXPECT().
					CreateOrUpdateSale(gomock.Any(), gomock.Any()).
					Return(domain.Sale{ID: "VND-GERADO12"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedID:     "VND-GERADO12",
		},
		{
			name:           "Corpo malformado é rejeitado",
			body:           `{invalido`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "Nome ausente é rejeitado",
			body:           `{"totalValue": 500}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Valor não positivo é rejeitado",
			body:           `{"clientName": "Maria", "totalValue": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Endpoint não configurado orienta o front para as configurações",
			body: `{"clientName": "Maria", "totalValue": 500}`,
			setup: func(service *mocks.MockCoordinator) {
				service.EXPECT().
					CreateOrUpdateSale(gomock.Any(), gomock.Any()).
					Return(domain.Sale{}, syncing.ErrNotConfigured)
			},
			expectedStatus: http.StatusPreconditionFailed,
			expectedCode:   apiErrors.ErrMissingAPIURL,
		},
		{
			name: "Falha na planilha devolve erro de serviço externo",
			body: `{"clientName": "Maria", "totalValue": 500}`,
			setup: func(service *mocks.MockCoordinator) {
				service.EXPECT().
					CreateOrUpdateSale(gomock.Any(), gomock.Any()).
					Return(domain.Sale{}, assert.AnError)
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCoordinator(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			SaveSale(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				apiErr := decodeAPIError(t, rec.Body)
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}

			if tt.expectedID != "" {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedID, resp["id"])
			}
		})
	}
}

func TestSaveSale_DefaultsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCoordinator(ctrl)

	var received domain.Sale
	service.EXPECT().
		CreateOrUpdateSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, sale domain.Sale) (domain.Sale, error) {
			received = sale
			return sale, nil
		})

	body := `{"clientName": "  Maria  ", "totalValue": 500, "purchaseDate": "10/03/2024"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sales", strings.NewReader(body))
	rec := httptest.NewRecorder()

	SaveSale(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Maria", received.ClientName)
	assert.Equal(t, domain.StatusOpen, received.PaymentStatus)
	assert.Equal(t, 1, received.InstallmentCount)
	require.NotNil(t, received.PurchaseDate)
	assert.Equal(t, "10/03/2024", received.RawPurchaseDate)
}

func TestPayInstallment(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockCoordinator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Pagamento válido devolve sucesso",
			body: `{"saleId": "VND-1", "installmentNumber": 2}`,
			setup: func(service *mocks.MockCoordinator) {
				service.EXPECT().
					MarkInstallmentPaid(gomock.Any(), "VND-1", 2).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Venda ausente é rejeitada",
			body:           `{"installmentNumber": 2}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Número de parcela zero é rejeitado",
			body:           `{"saleId": "VND-1", "installmentNumber": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Sincronização em andamento devolve conflito",
			body: `{"saleId": "VND-1", "installmentNumber": 2}`,
			setup: func(service *mocks.MockCoordinator) {
				service.EXPECT().
					MarkInstallmentPaid(gomock.Any(), "VND-1", 2).
					Return(syncing.ErrRefreshInFlight)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrRefreshInFlight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCoordinator(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/installments/pay", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			PayInstallment(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				apiErr := decodeAPIError(t, rec.Body)
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "ok", resp["status"])
			}
		})
	}
}

func TestRefreshData(t *testing.T) {
	t.Run("Refresh bem sucedido devolve o status atualizado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockCoordinator(ctrl)
		service.EXPECT().Refresh(gomock.Any()).Return(nil)
		service.EXPECT().Status().Return(domain.SyncStatus{
			State:      domain.SyncReady,
			SalesCount: 10,
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/refresh", nil)
		rec := httptest.NewRecorder()

		RefreshData(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var status domain.SyncStatus
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
		assert.Equal(t, domain.SyncReady, status.State)
		assert.Equal(t, 10, status.SalesCount)
	})

	t.Run("Refresh concorrente devolve conflito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockCoordinator(ctrl)
		service.EXPECT().Refresh(gomock.Any()).Return(syncing.ErrRefreshInFlight)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/refresh", nil)
		rec := httptest.NewRecorder()

		RefreshData(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCoordinator(ctrl)
	service.EXPECT().Clients("maria").Return(syncing.ClientsView{
		TotalClients:  2,
		FilterApplied: true,
		Clients: []syncing.ClientView{
			{Name: "Maria Souza", Initials: "MS"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/clients?q=maria", nil)
	rec := httptest.NewRecorder()

	ListClients(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view syncing.ClientsView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.True(t, view.FilterApplied)
	assert.Equal(t, 2, view.TotalClients)
	require.Len(t, view.Clients, 1)
	assert.Equal(t, "Maria Souza", view.Clients[0].Name)
}

func TestGetSettings(t *testing.T) {
	t.Run("Endpoint configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockCoordinator(ctrl)
		service.EXPECT().Endpoint().Return("https://script.google.com/macros/s/ABC/exec", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		rec := httptest.NewRecorder()

		GetSettings(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SettingsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Configured)
		assert.Equal(t, "https://script.google.com/macros/s/ABC/exec", resp.APIURL)
	})

	t.Run("Sem endpoint configurado não é erro na tela de configurações", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := mocks.NewMockCoordinator(ctrl)
		service.EXPECT().Endpoint().Return("", syncing.ErrNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		rec := httptest.NewRecorder()

		GetSettings(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SettingsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Configured)
		assert.Empty(t, resp.APIURL)
	})
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockCoordinator)
		expectedStatus int
	}{
		{
			name: "URL válida é persistida",
			body: `{"apiUrl": "https://script.google.com/macros/s/ABC/exec"}`,
			setup: func(service *mocks.MockCoordinator) {
				service.EXPECT().
					UpdateEndpoint("https://script.google.com/macros/s/ABC/exec").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "URL vazia é rejeitada",
			body:           `{"apiUrl": ""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "URL sem esquema http é rejeitada",
			body:           `{"apiUrl": "ftp://script.google.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Texto que não é URL é rejeitado",
			body:           `{"apiUrl": "não é uma url"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCoordinator(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			UpdateSettings(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp SettingsResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Configured)
				assert.Equal(t, "https://script.google.com/macros/s/ABC/exec", resp.APIURL)
			}
		})
	}
}
