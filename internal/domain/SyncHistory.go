package domain

import "time"

type SyncType string

const (
	SyncTypeBackfill SyncType = "backfill"
	SyncTypeLive     SyncType = "live"
	SyncTypeDate     SyncType = "date"
)

type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncHistory registra uma execução de sincronização para depuração
type SyncHistory struct {
	ID               int64      `json:"id"`
	SyncType         SyncType   `json:"sync_type"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	Status           SyncStatus `json:"status"`
	RecordsProcessed int        `json:"records_processed"`
	ErrorMessage     *string    `json:"error_message"`
}

// SyncResult é o resultado da sincronização de envios de um dia
type SyncResult struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
	Sends   int64  `json:"sends"`
	Error   string `json:"error,omitempty"`
}

// BackfillResult é o resultado do backfill histórico
type BackfillResult struct {
	Success  bool   `json:"success"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Error    string `json:"error,omitempty"`
}
