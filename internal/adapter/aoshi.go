package adapter

import (
	"fmt"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/store"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

const aoshiMarkPrefix = "減醣市集 X 奧世國際"

type aoshiAdapter struct {
	base
}

func (a *aoshiAdapter) Convert(rows []platform.RawRow, _ *store.AddressBook) Result {
	var errs errorList
	items := make([]order.StandardOrderItem, 0, len(rows))

	for _, row := range rows {
		item, ok := a.standardItem(row)
		if !ok {
			continue
		}

		item.OrderDate = utils.FormatDateYYYYMMDD(a.value(row, platform.RoleOrderDate))
		item.ProductCode = a.resolveCode(row, item.OrderID, &errs)
		item.OrderMark = utils.FormatOrderMark(aoshiMarkPrefix, a.value(row, platform.RoleOrderMark), "/")

		items = append(items, item)
	}

	return Result{Items: items, Errors: errs.errs}
}

func (a *aoshiAdapter) resolveCode(row platform.RawRow, orderID string, errs *errorList) string {
	name := a.value(row, platform.RoleProductName)

	code, ok := a.matcher.Resolve(name, catalog.MatchAoshiName, "")
	if !ok {
		errs.add(orderID, "商品名稱", fmt.Sprintf("找不到商品: %s", name), order.SeverityWarning)
		return order.ErrorProductCode
	}
	return code
}
