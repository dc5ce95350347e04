package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"wooflow/internal/database"
	"wooflow/internal/events"
	"wooflow/internal/logger"
	"wooflow/internal/models"

	"github.com/google/uuid"
)

// Processor turns consumed events into product_events audit rows.
type Processor struct {
	db     *database.Database
	logger *logger.Logger
}

func NewProcessor(db *database.Database, logger *logger.Logger) *Processor {
	return &Processor{
		db:     db,
		logger: logger,
	}
}

func (p *Processor) Process(event events.Event) error {
	payload, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	createdAt := event.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	record := models.ProductEvent{
		ID:        uuid.NewString(),
		Type:      event.Type,
		ProductID: event.ProductID,
		Payload:   string(payload),
		CreatedAt: createdAt,
	}

	if err := p.db.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to store event: %w", err)
	}

	p.logger.Debug("Stored %s event for product %s", event.Type, event.ProductID)
	return nil
}
