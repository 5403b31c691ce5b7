package domain

import "time"

// SyncState representa o estado do coordenador de sincronização.
// Transições: Idle -> Loading -> {Ready, Error}; Ready/Error -> Loading a cada
// novo refresh ou mutação. Não há estado terminal: o coordenador vive enquanto
// a sessão durar.
type SyncState string

const (
	SyncIdle    SyncState = "idle"
	SyncLoading SyncState = "loading"
	SyncReady   SyncState = "ready"
	SyncError   SyncState = "error"
)

// SyncStatus é o retrato do coordenador exposto pela API
type SyncStatus struct {
	State             SyncState  `json:"state"`
	LastError         string     `json:"last_error,omitempty"`
	LastRefreshAt     *time.Time `json:"last_refresh_at,omitempty"`
	SalesCount        int        `json:"sales_count"`
	InstallmentsCount int        `json:"installments_count"`
}
