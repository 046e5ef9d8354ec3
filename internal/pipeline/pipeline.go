// Package pipeline wires the processing stages for one uploaded export
// file: platform detection, column validation, store-address prefetch,
// adapter conversion and unified row generation.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/adapter"
	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/excel"
	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/report"
	"github.com/lowcarbmkt/order-report/internal/store"
)

// Pipeline processes order exports against one catalog snapshot. Each Run
// builds its own matcher and processor, so concurrent runs never share
// mutable state.
type Pipeline struct {
	catalog      *catalog.Catalog
	fieldConfigs map[platform.Platform]platform.FieldConfig
	stores       store.Lookup
	logger       *zap.Logger
}

// New creates a pipeline. stores may be nil when no SHOPLINE file will be
// processed; SHOPLINE store-pickup rows then fail with per-row address
// errors rather than a crash.
func New(cat *catalog.Catalog, configs map[platform.Platform]platform.FieldConfig, stores store.Lookup, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		catalog:      cat,
		fieldConfigs: configs,
		stores:       stores,
		logger:       logger,
	}
}

// RunResult is everything one file produced.
type RunResult struct {
	Platform   platform.Platform         `json:"platform"`
	AutoDetect platform.DetectionResult  `json:"autoDetect"`
	Validation platform.ValidationResult `json:"validation"`
	Rows       []report.OrderRow         `json:"-"`
	ItemCount  int                       `json:"itemCount"`
	OrderCount int                       `json:"orderCount"`
	Errors     []order.ConversionError   `json:"errors"`
}

// Run processes raw rows. forced selects the channel explicitly; when empty
// the detector decides, falling back to the top-scoring channel with a
// warning when no channel matches fully. A validation failure blocks the
// run and returns *platform.ValidationError.
func (p *Pipeline) Run(ctx context.Context, rows []platform.RawRow, forced platform.Platform) (*RunResult, error) {
	result := &RunResult{}

	chosen := forced
	if chosen == "" {
		result.AutoDetect = platform.Detect(rows, p.fieldConfigs)
		chosen = result.AutoDetect.Detected
		if chosen == "" {
			if len(result.AutoDetect.AllScores) == 0 {
				return nil, fmt.Errorf("無法識別平台: 檔案為空")
			}
			chosen = result.AutoDetect.AllScores[0].Platform
			result.Errors = append(result.Errors, order.ConversionError{
				Field:    "平台",
				Message:  fmt.Sprintf("無法完全識別平台，以最接近的 %s 處理 (信心 %.0f%%)", chosen.DisplayName(), result.AutoDetect.Confidence),
				Severity: order.SeverityWarning,
			})
			p.logger.Warn("平台識別不完全",
				zap.String("fallback", string(chosen)),
				zap.Float64("confidence", result.AutoDetect.Confidence))
		}
	}
	result.Platform = chosen

	cfg, ok := p.fieldConfigs[chosen]
	if !ok {
		return nil, fmt.Errorf("未知的平台: %s", chosen)
	}

	result.Validation = platform.ValidateColumns(rows, chosen, p.fieldConfigs)
	if !result.Validation.IsValid {
		return result, &platform.ValidationError{Platform: chosen, Missing: result.Validation.MissingRequired}
	}
	for _, col := range result.Validation.MissingOptional {
		result.Errors = append(result.Errors, order.ConversionError{
			Field:    col,
			Message:  fmt.Sprintf("缺少可選欄位: %s", col),
			Severity: order.SeverityWarning,
		})
	}

	sorted := excel.SortByOrderID(rows, cfg)

	var book *store.AddressBook
	if chosen == platform.Shopline && p.stores != nil {
		names := store.ExtractStoreNames(sorted, cfg)
		if !names.Empty() {
			book, _ = p.stores.FetchAddresses(ctx, names)
		} else {
			book = store.NewAddressBook()
		}
	}

	matcher := catalog.NewMatcher(p.catalog)
	a, err := adapter.New(chosen, cfg, matcher, p.logger)
	if err != nil {
		return nil, err
	}

	converted := a.Convert(sorted, book)
	result.Errors = append(result.Errors, converted.Errors...)
	result.ItemCount = len(converted.Items)

	processor := order.NewProcessor(p.catalog, p.logger)
	result.Rows = processor.Process(converted.Items)
	result.Errors = append(result.Errors, processor.Errors()...)

	orderIDs := make(map[string]bool, len(converted.Items))
	for _, item := range converted.Items {
		if item.OrderID != "" {
			orderIDs[item.OrderID] = true
		}
	}
	result.OrderCount = len(orderIDs)

	p.logger.Info("檔案處理完成",
		zap.String("platform", string(chosen)),
		zap.Int("raw_rows", len(rows)),
		zap.Int("items", result.ItemCount),
		zap.Int("orders", result.OrderCount),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}
