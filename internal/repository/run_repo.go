// Package repository persists processing history.
package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/models"
)

// RunRepository handles processing-run database operations
type RunRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB, logger *zap.Logger) *RunRepository {
	return &RunRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new run record and fills in its ID
func (r *RunRepository) Create(run *models.ProcessingRun) error {
	query := `
		INSERT INTO processing_runs (
			file_name, platform, auto_detected, confidence,
			item_count, order_count, warning_count, error_count, report_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		run.FileName,
		run.Platform,
		run.AutoDetected,
		run.Confidence,
		run.ItemCount,
		run.OrderCount,
		run.WarningCount,
		run.ErrorCount,
		run.ReportPath,
	)
	if err != nil {
		r.logger.Error("Failed to create run record", zap.Error(err))
		return fmt.Errorf("failed to create run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	run.ID = id
	return nil
}

// List returns the most recent runs, newest first
func (r *RunRepository) List(limit int) ([]*models.ProcessingRun, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, file_name, platform, auto_detected, confidence,
			item_count, order_count, warning_count, error_count,
			report_path, created_at
		FROM processing_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		r.logger.Error("Failed to list runs", zap.Error(err))
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ProcessingRun
	for rows.Next() {
		var run models.ProcessingRun
		err := rows.Scan(
			&run.ID,
			&run.FileName,
			&run.Platform,
			&run.AutoDetected,
			&run.Confidence,
			&run.ItemCount,
			&run.OrderCount,
			&run.WarningCount,
			&run.ErrorCount,
			&run.ReportPath,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// GetByID retrieves a single run
func (r *RunRepository) GetByID(id int64) (*models.ProcessingRun, error) {
	query := `
		SELECT id, file_name, platform, auto_detected, confidence,
			item_count, order_count, warning_count, error_count,
			report_path, created_at
		FROM processing_runs
		WHERE id = ?
	`

	var run models.ProcessingRun
	err := r.db.QueryRow(query, id).Scan(
		&run.ID,
		&run.FileName,
		&run.Platform,
		&run.AutoDetected,
		&run.Confidence,
		&run.ItemCount,
		&run.OrderCount,
		&run.WarningCount,
		&run.ErrorCount,
		&run.ReportPath,
		&run.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get run", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}
