package models

import (
	"time"
)

// ProductEvent is the audit record the worker writes for every event it
// consumes from the product-events topic.
type ProductEvent struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	Type      string    `json:"type" gorm:"not null"`
	ProductID string    `json:"product_id"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
