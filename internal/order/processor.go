package order

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/report"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

// Processor turns standard order items into final report rows: one row per
// item plus one synthetic box row per order. Each run owns its own Processor;
// it is not safe for concurrent use.
type Processor struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	errors  []ProcessingError
}

// NewProcessor creates a processor over one catalog snapshot.
func NewProcessor(cat *catalog.Catalog, logger *zap.Logger) *Processor {
	return &Processor{catalog: cat, logger: logger}
}

// Process groups items by order id (first-seen order of distinct ids,
// regardless of input sorting) and emits report rows. Exactly one box row is
// appended after each group's item rows, templated from the group's first
// item. Oversized orders are recorded as errors but still emitted.
func (p *Processor) Process(items []StandardOrderItem) []report.OrderRow {
	p.errors = nil

	orderIDs, groups := groupByOrderID(items)

	rows := make([]report.OrderRow, 0, len(items)+len(orderIDs))
	for _, orderID := range orderIDs {
		rows = append(rows, p.processOrder(orderID, groups[orderID])...)
	}
	return rows
}

// Errors returns the problems accumulated by the last Process call.
func (p *Processor) Errors() []ProcessingError {
	return p.errors
}

func groupByOrderID(items []StandardOrderItem) ([]string, map[string][]StandardOrderItem) {
	var orderIDs []string
	groups := make(map[string][]StandardOrderItem)
	for _, item := range items {
		if _, seen := groups[item.OrderID]; !seen {
			orderIDs = append(orderIDs, item.OrderID)
		}
		groups[item.OrderID] = append(groups[item.OrderID], item)
	}
	return orderIDs, groups
}

func (p *Processor) processOrder(orderID string, items []StandardOrderItem) []report.OrderRow {
	rows := make([]report.OrderRow, 0, len(items)+1)
	for _, item := range items {
		rows = append(rows, p.createOrderRow(item))
	}
	// Adapters drop blank order ids, but a box must never be attributed to
	// an id-less group.
	if len(rows) == 0 || orderID == "" {
		return rows
	}

	boxItems := make([]BoxItem, len(items))
	for i, item := range items {
		if _, known := p.catalog.Get(item.ProductCode); !known {
			p.logger.Warn("未知商品編號",
				zap.String("order_id", orderID),
				zap.String("product_code", item.ProductCode))
		}
		boxItems[i] = BoxItem{ProductCode: item.ProductCode, Quantity: item.Quantity}
	}

	box := ComputeBox(boxItems, p.catalog)
	rows = append(rows, createBoxRow(rows[0], box))

	if box.NeedsSplit() {
		p.addError(orderID, "箱型", "訂單商品數量過多，需要拆單", SeverityError)
	}
	return rows
}

func (p *Processor) createOrderRow(item StandardOrderItem) report.OrderRow {
	return report.OrderRow{
		report.ColOwnerID:        report.OwnerID,
		report.ColOwnerOrderNo:   item.OrderID,
		report.ColItemSeq:        "",
		report.ColClientCode:     item.ReceiverName,
		report.ColOrderDate:      item.OrderDate,
		report.ColExpectedDate:   "",
		report.ColProductCode:    item.ProductCode,
		report.ColProductName:    utils.CleanProductName(item.ProductName),
		report.ColWarehouse:      "",
		report.ColExpiry:         "",
		report.ColReservedBlank:  "",
		report.ColQuantity:       strconv.Itoa(item.Quantity),
		report.ColUnitPrice:      "",
		report.ColDeliveryMethod: item.DeliveryMethod,
		report.ColReceiverName:   item.ReceiverName,
		report.ColReceiverAddr:   item.ReceiverAddress,
		report.ColReceiverPhone:  item.ReceiverPhone,
		report.ColDayPhone:       "",
		report.ColNightPhone:     "",
		report.ColArrivalTime:    item.ArrivalTime,
		report.ColCollectAmount:  "",
		report.ColOrderMark:      item.OrderMark,
		report.ColItemNote:       "",
		report.ColDispatchDate:   "",
		report.ColOrderChannel:   "",
		report.ColTemperature:    report.TemperatureFrozen,
	}
}

// createBoxRow clones the order's first item row and overwrites the product
// fields with the carton.
func createBoxRow(template report.OrderRow, box BoxType) report.OrderRow {
	row := make(report.OrderRow, len(template))
	for k, v := range template {
		row[k] = v
	}
	row[report.ColProductCode] = box.Code
	row[report.ColProductName] = box.Name
	row[report.ColQuantity] = "1"
	row[report.ColItemNote] = report.BoxItemNote
	return row
}

func (p *Processor) addError(orderID, field, message string, severity Severity) {
	p.errors = append(p.errors, ProcessingError{
		OrderID:  orderID,
		Field:    field,
		Message:  message,
		Severity: severity,
	})
}
