package adapter

import (
	"fmt"
	"strings"

	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/store"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

// shoplineColumnOption is read literally: the option column was never added
// to the field config and legacy exports rely on that.
const shoplineColumnOption = "選項"

const shoplineMarkPrefix = "減醣市集"

type shoplineAdapter struct {
	base
}

// Convert maps SHOPLINE rows 1:1, except rows with an empty product code:
// those are parent lines of bundled products and are dropped silently.
func (a *shoplineAdapter) Convert(rows []platform.RawRow, stores *store.AddressBook) Result {
	var errs errorList
	items := make([]order.StandardOrderItem, 0, len(rows))

	for _, row := range rows {
		productCode := a.value(row, platform.RoleProductCode)
		if productCode == "" {
			continue
		}

		item, ok := a.standardItem(row)
		if !ok {
			continue
		}

		method := a.shippingMethod(row)
		item.OrderDate = utils.FormatDateYYYYMMDD(a.value(row, platform.RoleOrderDate))
		item.DeliveryMethod = deliveryMethodFor(method)
		item.ReceiverAddress = a.receiverAddress(row, method, stores, &errs)
		item.ProductCode = productCode
		item.ProductName = a.productName(row, productCode)
		item.OrderMark = utils.FormatOrderMark(shoplineMarkPrefix, a.value(row, platform.RoleOrderMark), "/")
		item.ArrivalTime = arrivalTimeFor(a.value(row, platform.RoleArrivalTime))

		items = append(items, item)
	}

	return Result{Items: items, Errors: errs.errs}
}

// shippingMethod truncates the raw value at the first full-width paren;
// exports append store chain details there.
func (a *shoplineAdapter) shippingMethod(row platform.RawRow) string {
	method, _, _ := strings.Cut(a.value(row, platform.RoleDeliveryMethod), "（")
	return method
}

func deliveryMethodFor(method string) string {
	switch method {
	case platform.ShippingTcat:
		return order.DeliveryTcat
	case platform.ShippingFamily:
		return order.DeliveryFamily
	case platform.ShippingSeven:
		return order.DeliverySeven
	}
	return order.DeliveryUnknown
}

// receiverAddress resolves where the parcel actually goes. Home delivery
// uses the export's address column; store pickup needs the pre-fetched
// address book, and a missing entry is a hard per-row error.
func (a *shoplineAdapter) receiverAddress(row platform.RawRow, method string, stores *store.AddressBook, errs *errorList) string {
	storeName := a.value(row, platform.RoleStoreName)
	fullAddress := a.value(row, platform.RoleReceiverAddress)
	orderID := a.orderID(row)

	if method == platform.ShippingTcat {
		return fullAddress
	}

	if stores == nil {
		errs.add(orderID, "地址", fmt.Sprintf("缺少門市地址資料: %s", storeName), order.SeverityError)
		return order.ErrorAddress
	}

	switch method {
	case platform.ShippingFamily:
		addr, ok := stores.FamilyAddress(storeName)
		if !ok {
			errs.add(orderID, "地址", fmt.Sprintf("找不到全家門市: %s", storeName), order.SeverityError)
			if addr == "" {
				return order.ErrorAddress
			}
			return addr
		}
		return fmt.Sprintf("%s (%s)", storeName, addr)
	case platform.ShippingSeven:
		addr, ok := stores.SevenAddress(storeName)
		if !ok {
			errs.add(orderID, "地址", fmt.Sprintf("找不到7-11門市: %s", storeName), order.SeverityError)
			if addr == "" {
				return order.ErrorAddress
			}
			return addr
		}
		return "(宅轉店)" + addr
	}

	errs.add(orderID, "配送方式", fmt.Sprintf("未知的配送方式: %s", method), order.SeverityWarning)
	if fullAddress == "" {
		return order.ErrorAddress
	}
	return fullAddress
}

// productName prefers the product name column, falling back to the option
// column for variant-only lines, and appends the mark embedded in the third
// segment of the vendor product code.
func (a *shoplineAdapter) productName(row platform.RawRow, productCode string) string {
	name := a.value(row, platform.RoleProductName)
	mark := utils.ExtractProductMark(productCode)
	if name != "" {
		return name + mark
	}
	return utils.SafeString(row[shoplineColumnOption]) + mark
}

func arrivalTimeFor(raw string) string {
	switch raw {
	case "上午到貨":
		return "1"
	case "下午到貨":
		return "2"
	}
	return ""
}
