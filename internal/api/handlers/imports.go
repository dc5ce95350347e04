package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"wooflow/internal/database"
	"wooflow/internal/events"
	"wooflow/internal/importer"
	"wooflow/internal/logger"
	"wooflow/internal/models"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ImportHandler struct {
	importer  *importer.Importer
	db        *database.Database
	logger    *logger.Logger
	publisher *events.Publisher
}

func NewImportHandler(client *woo.Client, db *database.Database, logger *logger.Logger, publisher *events.Publisher) *ImportHandler {
	return &ImportHandler{
		importer:  importer.New(client, logger),
		db:        db,
		logger:    logger,
		publisher: publisher,
	}
}

// ImportCSV runs a bulk product import from an uploaded CSV file.
// The file is staged to a temp path because the parser reads from disk.
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	delimiter := c.DefaultPostForm("delimiter", ",")
	if len(delimiter) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delimiter must be a single character"})
		return
	}

	tmpPath, err := stageUpload(file.Filename, func(dst io.Writer) error {
		src, err := file.Open()
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stage file: " + err.Error()})
		return
	}
	defer os.Remove(tmpPath)

	startedAt := time.Now()
	result := h.importer.ImportFromFile(c.Request.Context(), tmpPath, rune(delimiter[0]))

	runID := h.persistRun(c, models.ImportSourceCSV, file.Filename, startedAt, result)

	status := http.StatusOK
	if result.Error != "" {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"run_id":  runID,
		"created": result.Created,
		"failed":  result.Failed,
		"error":   result.Error,
	})
}

// ImportList runs a bulk product import from rows posted as JSON.
func (h *ImportHandler) ImportList(c *gin.Context) {
	var req struct {
		Rows []map[string]string `json:"rows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make([]importer.Row, 0, len(req.Rows))
	for _, raw := range req.Rows {
		rows = append(rows, importer.CleanRow(raw))
	}

	startedAt := time.Now()
	result := h.importer.ImportFromList(c.Request.Context(), rows)

	runID := h.persistRun(c, models.ImportSourceList, "", startedAt, result)

	c.JSON(http.StatusOK, gin.H{
		"run_id":  runID,
		"created": result.Created,
		"failed":  result.Failed,
	})
}

func (h *ImportHandler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	runs := []models.ImportRun{}
	if err := h.db.DB.Order("started_at desc").Limit(limit).Find(&runs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list import runs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}

func (h *ImportHandler) GetRun(c *gin.Context) {
	runID := c.Param("id")

	var run models.ImportRun
	if err := h.db.DB.First(&run, "id = ?", runID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Import run not found"})
		return
	}

	items := []models.ImportRunItem{}
	if err := h.db.DB.Where("run_id = ?", runID).Order("row_num asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load run items: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"run": run, "items": items})
}

// persistRun records the run and its per-row outcomes. Persistence and
// event publishing never affect the import response beyond the run ID.
func (h *ImportHandler) persistRun(c *gin.Context, source, fileName string, startedAt time.Time, result *importer.ImportResult) string {
	run := models.ImportRun{
		ID:           uuid.NewString(),
		Source:       source,
		FileName:     fileName,
		CreatedCount: len(result.Created),
		FailedCount:  len(result.Failed),
		Error:        result.Error,
		StartedAt:    startedAt,
		FinishedAt:   time.Now(),
	}
	if err := h.db.DB.Create(&run).Error; err != nil {
		h.logger.Error("Failed to persist import run: %v", err)
		return ""
	}

	items := make([]models.ImportRunItem, 0, len(result.Created)+len(result.Failed))
	for _, created := range result.Created {
		items = append(items, models.ImportRunItem{
			ID:        uuid.NewString(),
			RunID:     run.ID,
			Row:       created.Row,
			Success:   true,
			ProductID: created.ID,
			Name:      created.Name,
			Type:      created.Type,
			SKU:       created.SKU,
		})
	}
	for _, failed := range result.Failed {
		data, err := json.Marshal(failed.Data)
		if err != nil {
			data = nil
		}
		items = append(items, models.ImportRunItem{
			ID:      uuid.NewString(),
			RunID:   run.ID,
			Row:     failed.Row,
			Success: false,
			Error:   failed.Error,
			Data:    string(data),
		})
	}
	if len(items) > 0 {
		if err := h.db.DB.Create(&items).Error; err != nil {
			h.logger.Error("Failed to persist import run items: %v", err)
		}
	}

	h.publisher.Publish(c.Request.Context(), events.Event{
		Type: events.TypeImportCompleted,
		Data: map[string]interface{}{
			"run_id":  run.ID,
			"source":  source,
			"created": run.CreatedCount,
			"failed":  run.FailedCount,
		},
	})

	return run.ID
}
