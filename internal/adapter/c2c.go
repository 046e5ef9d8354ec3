package adapter

import (
	"fmt"
	"strings"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/store"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

// GiveawayCode is the raw C2C product code for bundled giveaways. One such
// row fans out into up to two standard items, one per bundled product.
const GiveawayCode = "F2500000044"

const (
	c2cMarkPrefix     = "減醣市集 X 快電商 C2C BUY"
	c2cMarkSeparator  = " | "
	giveawayStyleTail = "(贈品)-F"
)

type c2cAdapter struct {
	base
}

func (a *c2cAdapter) Convert(rows []platform.RawRow, _ *store.AddressBook) Result {
	var errs errorList
	items := make([]order.StandardOrderItem, 0, len(rows))

	for _, row := range rows {
		if utils.IsEmptyOrInvalid(a.orderID(row)) {
			continue
		}

		rawCode := a.value(row, platform.RoleProductCode)
		if rawCode == GiveawayCode {
			items = append(items, a.convertGiveaway(row, rawCode, &errs)...)
			continue
		}

		if item, ok := a.convertRow(row, rawCode, &errs); ok {
			items = append(items, item)
		}
	}

	return Result{Items: items, Errors: errs.errs}
}

func (a *c2cAdapter) convertRow(row platform.RawRow, rawCode string, errs *errorList) (order.StandardOrderItem, bool) {
	item, ok := a.standardItem(row)
	if !ok {
		return item, false
	}

	style := a.value(row, platform.RoleProductName)
	item.OrderDate = utils.FormatDateYYYYMMDD(a.value(row, platform.RoleOrderDate))
	item.ProductCode = a.resolveCode(rawCode, style, item.OrderID, errs)
	item.ProductName = utils.CleanProductName(style)
	item.OrderMark = utils.FormatOrderMark(c2cMarkPrefix, a.value(row, platform.RoleOrderMark), c2cMarkSeparator)
	return item, true
}

// convertGiveaway splits a giveaway row on "+" after stripping the style
// suffix; the first two non-empty segments each become an item sharing the
// row's order id and receiver fields.
func (a *c2cAdapter) convertGiveaway(row platform.RawRow, rawCode string, errs *errorList) []order.StandardOrderItem {
	style := a.value(row, platform.RoleProductName)
	cleaned := strings.ReplaceAll(style, giveawayStyleTail, "")

	var names []string
	for _, part := range strings.Split(cleaned, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, part)
		if len(names) == 2 {
			break
		}
	}
	if len(names) == 0 {
		names = []string{utils.CleanProductName(style)}
	}

	items := make([]order.StandardOrderItem, 0, len(names))
	for _, name := range names {
		item, ok := a.standardItem(row)
		if !ok {
			continue
		}
		item.OrderDate = utils.FormatDateYYYYMMDD(a.value(row, platform.RoleOrderDate))
		item.ProductCode = a.resolveCode(rawCode, name, item.OrderID, errs)
		item.ProductName = name
		item.OrderMark = utils.FormatOrderMark(c2cMarkPrefix, a.value(row, platform.RoleOrderMark), c2cMarkSeparator)
		items = append(items, item)
	}
	return items
}

func (a *c2cAdapter) resolveCode(rawCode, styleName, orderID string, errs *errorList) string {
	code, ok := a.matcher.Resolve(rawCode, catalog.MatchC2CCode, styleName)
	if !ok {
		errs.add(orderID, "商品編號", fmt.Sprintf("找不到商品: %s / %s", rawCode, styleName), order.SeverityWarning)
		return order.ErrorProductCode
	}
	return code
}
