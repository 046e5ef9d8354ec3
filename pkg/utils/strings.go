package utils

import "strings"

// SafeString converts a raw cell value into a usable string. Spreadsheet
// readers hand back placeholder text for empty or failed cells ("nan",
// "NaN", "undefined", "null") which must be treated as empty.
func SafeString(value string) string {
	switch value {
	case "nan", "NaN", "undefined", "null":
		return ""
	}
	return value
}

// IsEmptyOrInvalid reports whether a cell value carries no usable data.
func IsEmptyOrInvalid(value string) bool {
	s := strings.ToLower(strings.TrimSpace(value))
	return s == "" || s == "nan" || s == "undefined" || s == "null"
}

// CleanProductName strips the vendor "-F" style suffix from a product name.
func CleanProductName(name string) string {
	return strings.TrimSuffix(SafeString(name), "-F")
}

// FormatOrderMark prefixes a customer note with the channel label. An empty
// note yields just the label.
func FormatOrderMark(prefix, note, separator string) string {
	cleaned := SafeString(note)
	if cleaned == "" {
		return prefix
	}
	return prefix + separator + cleaned
}

// ExtractProductMark returns the "-459" style mark embedded in the third
// dash-delimited segment of a vendor product code, or "" when absent.
func ExtractProductMark(productCode string) string {
	parts := strings.Split(SafeString(productCode), "-")
	if len(parts) < 3 {
		return ""
	}
	return "-" + parts[2]
}
