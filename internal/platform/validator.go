package platform

import "fmt"

// EmptyFileMarker is reported as a missing required column when a file has
// no data rows at all.
const EmptyFileMarker = "檔案為空"

// ValidationResult is the outcome of checking a file's columns against one
// channel's expectations. Missing optional columns never block processing;
// they are surfaced for diagnostics only.
type ValidationResult struct {
	IsValid         bool     `json:"isValid"`
	MissingRequired []string `json:"missingRequired"`
	MissingOptional []string `json:"missingOptional"`
	ExtraColumns    []string `json:"extraColumns"`
}

// ValidationError is returned when required columns are absent; it blocks
// the run entirely, unlike per-row conversion problems.
type ValidationError struct {
	Platform Platform
	Missing  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("平台 %s 缺少必要欄位: %v", e.Platform.DisplayName(), e.Missing)
}

// ValidateColumns diffs a file's column set against a channel's
// required/expected columns.
func ValidateColumns(rows []RawRow, p Platform, configs map[Platform]FieldConfig) ValidationResult {
	if len(rows) == 0 {
		return ValidationResult{
			IsValid:         false,
			MissingRequired: []string{EmptyFileMarker},
			MissingOptional: []string{},
			ExtraColumns:    []string{},
		}
	}

	cfg := configs[p]
	actual := actualColumnSet(rows[0])

	required := make(map[string]bool, len(cfg.RequiredColumns))
	missingRequired := []string{}
	for _, col := range cfg.RequiredColumns {
		required[col] = true
		if !actual[col] {
			missingRequired = append(missingRequired, col)
		}
	}

	expected := make(map[string]bool, len(cfg.Columns))
	missingOptional := []string{}
	for _, col := range cfg.Columns {
		expected[col] = true
		if !required[col] && !actual[col] {
			missingOptional = append(missingOptional, col)
		}
	}

	extraColumns := []string{}
	for col := range actual {
		if !expected[col] {
			extraColumns = append(extraColumns, col)
		}
	}

	return ValidationResult{
		IsValid:         len(missingRequired) == 0,
		MissingRequired: missingRequired,
		MissingOptional: missingOptional,
		ExtraColumns:    extraColumns,
	}
}
