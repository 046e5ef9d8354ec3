package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/excel"
	"github.com/lowcarbmkt/order-report/internal/models"
	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/pipeline"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/repository"
	"github.com/lowcarbmkt/order-report/internal/store"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	catalogs  *catalog.Manager
	stores    store.Lookup
	runs      *repository.RunRepository
	writer    *excel.Writer
	outputDir string
	logger    *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	catalogs *catalog.Manager,
	stores store.Lookup,
	runs *repository.RunRepository,
	writer *excel.Writer,
	outputDir string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		catalogs:  catalogs,
		stores:    stores,
		runs:      runs,
		writer:    writer,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ProcessResponse summarizes one processed file
type ProcessResponse struct {
	RunID        int64                   `json:"run_id"`
	Platform     string                  `json:"platform"`
	PlatformName string                  `json:"platform_name"`
	AutoDetected bool                    `json:"auto_detected"`
	Confidence   float64                 `json:"confidence"`
	ItemCount    int                     `json:"item_count"`
	OrderCount   int                     `json:"order_count"`
	ReportPath   string                  `json:"report_path"`
	Errors       []order.ConversionError `json:"errors"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// ProcessFile handles POST /api/process. The multipart form carries the
// export file under "file"; an optional "platform" field skips auto
// detection.
func (h *Handlers) ProcessFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "缺少上傳檔案"})
		return
	}

	forced, ok := h.forcedPlatform(c.PostForm("platform"))
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "未知的平台: " + c.PostForm("platform")})
		return
	}

	rows, err := h.readUpload(fileHeader)
	if err != nil {
		h.logger.Error("Failed to read upload", zap.String("file", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	p := pipeline.New(h.catalogs.Current(), platform.DefaultFieldConfigs, h.stores, h.logger)
	result, err := p.Run(c.Request.Context(), rows, forced)
	if err != nil {
		var verr *platform.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, Response{Success: false, Error: verr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	reportPath, err := h.writeReport(result)
	if err != nil {
		h.logger.Error("Failed to write report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "報表產生失敗"})
		return
	}

	warnings, errCount := countBySeverity(result.Errors)
	run := &models.ProcessingRun{
		FileName:     fileHeader.Filename,
		Platform:     string(result.Platform),
		AutoDetected: forced == "",
		Confidence:   result.AutoDetect.Confidence,
		ItemCount:    result.ItemCount,
		OrderCount:   result.OrderCount,
		WarningCount: warnings,
		ErrorCount:   errCount,
		ReportPath:   reportPath,
	}
	if err := h.runs.Create(run); err != nil {
		h.logger.Error("Failed to record run", zap.Error(err))
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ProcessResponse{
			RunID:        run.ID,
			Platform:     string(result.Platform),
			PlatformName: result.Platform.DisplayName(),
			AutoDetected: run.AutoDetected,
			Confidence:   result.AutoDetect.Confidence,
			ItemCount:    result.ItemCount,
			OrderCount:   result.OrderCount,
			ReportPath:   reportPath,
			Errors:       result.Errors,
		},
	})
}

// ListRuns handles GET /api/runs
func (h *Handlers) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	runs, err := h.runs.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "無法讀取處理紀錄"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: runs})
}

// GetRun handles GET /api/runs/:id
func (h *Handlers) GetRun(c *gin.Context) {
	run, ok := h.runByID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: run})
}

// DownloadReport handles GET /api/runs/:id/report
func (h *Handlers) DownloadReport(c *gin.Context) {
	run, ok := h.runByID(c)
	if !ok {
		return
	}
	if run.ReportPath == "" {
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "此紀錄沒有報表檔案"})
		return
	}
	c.FileAttachment(run.ReportPath, filepath.Base(run.ReportPath))
}

// ExportCatalog handles GET /api/catalog
func (h *Handlers) ExportCatalog(c *gin.Context) {
	data, err := h.catalogs.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "無法匯出商品目錄"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// ImportCatalog handles PUT /api/catalog
func (h *Handlers) ImportCatalog(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "無法讀取請求內容"})
		return
	}
	if err := h.catalogs.Replace(data); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    gin.H{"products": h.catalogs.Current().Len()},
	})
}

func (h *Handlers) forcedPlatform(value string) (platform.Platform, bool) {
	if value == "" {
		return "", true
	}
	for _, p := range platform.Platforms {
		if string(p) == value {
			return p, true
		}
	}
	return "", false
}

func (h *Handlers) readUpload(fileHeader *multipart.FileHeader) ([]platform.RawRow, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("無法開啟上傳檔案: %w", err)
	}
	defer f.Close()
	return excel.ReadOrders(f)
}

func (h *Handlers) writeReport(result *pipeline.RunResult) (string, error) {
	if err := os.MkdirAll(h.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_report.xlsx", time.Now().Format("20060102_150405"), result.Platform)
	path := filepath.Join(h.outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := h.writer.Write(result.Rows, f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (h *Handlers) runByID(c *gin.Context) (*models.ProcessingRun, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "無效的紀錄編號"})
		return nil, false
	}
	run, err := h.runs.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "無法讀取處理紀錄"})
		return nil, false
	}
	if run == nil {
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "找不到處理紀錄"})
		return nil, false
	}
	return run, true
}

func countBySeverity(errs []order.ConversionError) (warnings, errors int) {
	for _, e := range errs {
		if e.Severity == order.SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return warnings, errors
}
