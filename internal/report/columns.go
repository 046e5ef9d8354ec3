// Package report defines the warehouse-shipment report format. The column
// headers are consumed verbatim by downstream warehouse tooling, embedded
// newlines included, and must never be altered, reordered or translated.
package report

// OrderRow is one output line keyed by report column header.
type OrderRow map[string]string

// Report column headers.
const (
	ColOwnerID        = "貨主編號"
	ColOwnerOrderNo   = "貨主單號\n(不同客戶端、不同溫層要分單)"
	ColItemSeq        = "訂單\n品項序號"
	ColClientCode     = "客戶端代號(店號)"
	ColOrderDate      = "訂購日期"
	ColExpectedDate   = "預計到貨日"
	ColProductCode    = "商品編號"
	ColProductName    = "商品名稱"
	ColWarehouse      = "倉別"
	ColExpiry         = "指定效期"
	ColReservedBlank  = "指定\n(固定空白)"
	ColQuantity       = "訂購數量"
	ColUnitPrice      = "商品單價"
	ColDeliveryMethod = "配送方式\nFT : 逢泰配送\nTcat : 黑貓宅配\n全家到府取貨"
	ColReceiverName   = "收貨人姓名"
	ColReceiverAddr   = "收貨人地址"
	ColReceiverPhone  = "收貨人聯絡電話"
	ColDayPhone       = "日間聯絡電話"
	ColNightPhone     = "夜間聯絡電話"
	ColArrivalTime    = "到貨時段\n1: 13點前\n2: 14~18\n3: 不限時"
	ColCollectAmount  = "代收金額\n( 不用代收請填 0 )"
	ColOrderMark      = "訂單 / 宅配單備註"
	ColItemNote       = "品項備註"
	ColDispatchDate   = "抛單日期"
	ColOrderChannel   = "訂單通路"
	ColTemperature    = "指定配送溫層\n001：常溫\n002：冷藏\n003：冷凍"
)

// TemplateColumns lists the headers in report order.
var TemplateColumns = []string{
	ColOwnerID,
	ColOwnerOrderNo,
	ColItemSeq,
	ColClientCode,
	ColOrderDate,
	ColExpectedDate,
	ColProductCode,
	ColProductName,
	ColWarehouse,
	ColExpiry,
	ColReservedBlank,
	ColQuantity,
	ColUnitPrice,
	ColDeliveryMethod,
	ColReceiverName,
	ColReceiverAddr,
	ColReceiverPhone,
	ColDayPhone,
	ColNightPhone,
	ColArrivalTime,
	ColCollectAmount,
	ColOrderMark,
	ColItemNote,
	ColDispatchDate,
	ColOrderChannel,
	ColTemperature,
}

// Fixed cell values.
const (
	OwnerID           = "A442"
	TemperatureFrozen = "003" // 冷凍
	BoxItemNote       = "箱子"
)
