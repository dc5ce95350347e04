package models

import (
	"time"
)

// ImportRun is the persisted record of one bulk import call.
type ImportRun struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key"`
	Source       string    `json:"source"` // csv or list
	FileName     string    `json:"file_name,omitempty"`
	CreatedCount int       `json:"created_count"`
	FailedCount  int       `json:"failed_count"`
	Error        string    `json:"error,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// ImportRunItem mirrors one import outcome: either a created product or a
// failed row with its error and original data.
type ImportRunItem struct {
	ID        string `json:"id" gorm:"type:uuid;primary_key"`
	RunID     string `json:"run_id" gorm:"index;not null"`
	Row       int    `json:"row" gorm:"column:row_num"`
	Success   bool   `json:"success"`
	ProductID int    `json:"product_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Error     string `json:"error,omitempty"`
	Data      string `json:"data,omitempty"` // original row as JSON, failures only
}

const (
	ImportSourceCSV  = "csv"
	ImportSourceList = "list"
)
