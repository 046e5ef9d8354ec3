// Package adapter converts raw channel spreadsheets into standard order
// items. One adapter exists per sales channel; all of them are pure
// per-file transforms that accumulate structured errors instead of failing.
package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/store"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

// Result is one conversion pass: the standard items plus every per-row
// problem encountered along the way.
type Result struct {
	Items  []order.StandardOrderItem
	Errors []order.ConversionError
}

// Adapter converts one channel's raw rows. The address book is only
// consulted by channels with convenience-store delivery; others ignore it.
type Adapter interface {
	Platform() platform.Platform
	Convert(rows []platform.RawRow, stores *store.AddressBook) Result
}

// New returns the adapter for a channel. The matcher must be built from the
// same catalog snapshot the rest of the run uses.
func New(p platform.Platform, cfg platform.FieldConfig, matcher *catalog.Matcher, logger *zap.Logger) (Adapter, error) {
	base := base{
		platformKey: p,
		cfg:         cfg,
		matcher:     matcher,
		logger:      logger,
	}
	switch p {
	case platform.Shopline:
		return &shoplineAdapter{base: base}, nil
	case platform.C2C:
		return &c2cAdapter{base: base}, nil
	case platform.Mixx:
		return &mixxAdapter{base: base}, nil
	case platform.Aoshi:
		return &aoshiAdapter{base: base}, nil
	}
	return nil, fmt.Errorf("unknown platform: %s", p)
}

// base carries what every channel adapter needs: the column bindings, the
// product matcher and a logger. It is read-only after construction.
type base struct {
	platformKey platform.Platform
	cfg         platform.FieldConfig
	matcher     *catalog.Matcher
	logger      *zap.Logger
}

func (b *base) Platform() platform.Platform {
	return b.platformKey
}

// value reads the cell bound to a semantic role, "" when the channel has no
// column for it.
func (b *base) value(row platform.RawRow, role platform.FieldRole) string {
	col := b.cfg.Column(role)
	if col == "" {
		return ""
	}
	return utils.SafeString(row[col])
}

func (b *base) orderID(row platform.RawRow) string {
	return b.value(row, platform.RoleOrderID)
}

// quantity parses the ordered amount, clamping anything unusable to 0.
func (b *base) quantity(row platform.RawRow) int {
	raw := strings.TrimSpace(b.value(row, platform.RoleProductQuantity))
	qty, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0
		}
		qty = int(f)
	}
	if qty < 0 {
		return 0
	}
	return qty
}

// standardItem fills the fields every channel maps the same way. It returns
// false for rows without an order id: trailing blank spreadsheet lines are
// expected and are not errors.
func (b *base) standardItem(row platform.RawRow) (order.StandardOrderItem, bool) {
	orderID := b.orderID(row)
	if utils.IsEmptyOrInvalid(orderID) {
		return order.StandardOrderItem{}, false
	}
	return order.StandardOrderItem{
		OrderID:         orderID,
		ReceiverName:    b.value(row, platform.RoleReceiverName),
		ReceiverPhone:   b.value(row, platform.RoleReceiverPhone),
		ReceiverAddress: b.value(row, platform.RoleReceiverAddress),
		DeliveryMethod:  order.DeliveryTcat,
		ProductName:     b.value(row, platform.RoleProductName),
		Quantity:        b.quantity(row),
		OrderMark:       b.value(row, platform.RoleOrderMark),
		SourcePlatform:  strings.ToUpper(string(b.platformKey)),
	}, true
}

// errorList accumulates conversion problems for one pass.
type errorList struct {
	errs []order.ConversionError
}

func (e *errorList) add(orderID, field, message string, severity order.Severity) {
	e.errs = append(e.errs, order.ConversionError{
		OrderID:  orderID,
		Field:    field,
		Message:  message,
		Severity: severity,
	})
}
