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

const mixxMarkPrefix = "減醣市集 X MIXX團購"

type mixxAdapter struct {
	base
}

func (a *mixxAdapter) Convert(rows []platform.RawRow, _ *store.AddressBook) Result {
	var errs errorList
	items := make([]order.StandardOrderItem, 0, len(rows))

	for _, row := range rows {
		item, ok := a.standardItem(row)
		if !ok {
			continue
		}

		// MIXX exports carry no order date; the processing day stands in.
		item.OrderDate = utils.CurrentDateYYYYMMDD()
		item.ProductCode = a.resolveCode(row, item.OrderID, &errs)
		item.OrderMark = utils.FormatOrderMark(mixxMarkPrefix, a.value(row, platform.RoleOrderMark), "/")

		items = append(items, item)
	}

	return Result{Items: items, Errors: errs.errs}
}

// resolveCode matches on the listing name with the "減醣市集｜" channel
// prefix removed.
func (a *mixxAdapter) resolveCode(row platform.RawRow, orderID string, errs *errorList) string {
	name := a.value(row, platform.RoleProductName)
	if i := strings.Index(name, "｜"); i >= 0 {
		name = name[i+len("｜"):]
	}

	code, ok := a.matcher.Resolve(name, catalog.MatchMixxName, "")
	if !ok {
		errs.add(orderID, "商品名稱", fmt.Sprintf("找不到商品: %s", name), order.SeverityWarning)
		return order.ErrorProductCode
	}
	return code
}
