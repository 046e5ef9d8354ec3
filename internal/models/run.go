// Package models defines persistence records.
package models

import "time"

// ProcessingRun records one processed order export: which channel it came
// from, how detection went and what the conversion produced.
type ProcessingRun struct {
	ID           int64     `json:"id"`
	FileName     string    `json:"fileName"`
	Platform     string    `json:"platform"`
	AutoDetected bool      `json:"autoDetected"`
	Confidence   float64   `json:"confidence"`
	ItemCount    int       `json:"itemCount"`
	OrderCount   int       `json:"orderCount"`
	WarningCount int       `json:"warningCount"`
	ErrorCount   int       `json:"errorCount"`
	ReportPath   string    `json:"reportPath"`
	CreatedAt    time.Time `json:"createdAt"`
}
