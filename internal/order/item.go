// Package order holds the channel-agnostic order model: the standard item
// produced by platform adapters, the box-size computation and the unified
// processor that renders report rows.
package order

// Sentinel values written into items the pipeline could not fully resolve.
// They flow through to the report where the error styling flags them.
const (
	ErrorProductCode = "ERROR"
	ErrorAddress     = "ERROR"
)

// Delivery methods after normalization.
const (
	DeliveryTcat    = "Tcat"
	DeliverySeven   = "7-11"
	DeliveryFamily  = "全家"
	DeliveryUnknown = "UNKNOWN"
)

// StandardOrderItem is one shippable product line in channel-agnostic form.
// Adapters create it from a raw row; the processor consumes it once.
type StandardOrderItem struct {
	OrderID         string `json:"orderId"`
	OrderDate       string `json:"orderDate"` // YYYYMMDD or INVALID_DATE
	ReceiverName    string `json:"receiverName"`
	ReceiverPhone   string `json:"receiverPhone"`
	ReceiverAddress string `json:"receiverAddress"`
	DeliveryMethod  string `json:"deliveryMethod"` // Tcat, 7-11, 全家 or UNKNOWN
	ProductCode     string `json:"productCode"`    // internal code or ERROR
	ProductName     string `json:"productName"`
	Quantity        int    `json:"quantity"`
	OrderMark       string `json:"orderMark"`
	ArrivalTime     string `json:"arrivalTime"` // "1", "2" or ""
	SourcePlatform  string `json:"sourcePlatform"`
}

// Severity grades a conversion problem.
type Severity string

const (
	// SeverityWarning marks a data-quality issue; the row still produces
	// output with sentinel values.
	SeverityWarning Severity = "warning"
	// SeverityError marks structurally missing data, e.g. no store address
	// for a convenience-store delivery.
	SeverityError Severity = "error"
)

// ConversionError is one accumulated per-row problem. The pipeline never
// aborts on a bad row; it records and continues.
type ConversionError struct {
	OrderID  string   `json:"orderId"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ProcessingError shares the shape of ConversionError; the processor emits
// the same structure for grouping-stage problems.
type ProcessingError = ConversionError
