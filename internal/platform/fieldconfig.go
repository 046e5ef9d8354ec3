package platform

// Platform identifies one of the supported sales channels.
type Platform string

const (
	C2C      Platform = "c2c"
	Shopline Platform = "shopline"
	Mixx     Platform = "mixx"
	Aoshi    Platform = "aoshi"
)

// Platforms lists the supported channels in configuration order. Detection
// ties are broken by this order, so it must stay stable.
var Platforms = []Platform{C2C, Shopline, Mixx, Aoshi}

// DisplayName returns the operator-facing channel name.
func (p Platform) DisplayName() string {
	switch p {
	case C2C:
		return "快電商 C2C"
	case Shopline:
		return "SHOPLINE"
	case Mixx:
		return "MIXX 團購"
	case Aoshi:
		return "奧世國際"
	}
	return string(p)
}

// RawRow is one spreadsheet line keyed by vendor column name. Cell values
// arrive as display strings from the reader.
type RawRow map[string]string

// FieldRole names a semantic slot an adapter reads from a raw row.
type FieldRole string

const (
	RoleOrderID         FieldRole = "order_id"
	RoleReceiverName    FieldRole = "receiver_name"
	RoleReceiverPhone   FieldRole = "receiver_phone"
	RoleReceiverAddress FieldRole = "receiver_address"
	RoleProductName     FieldRole = "product_name"
	RoleProductQuantity FieldRole = "product_quantity"
	RoleProductCode     FieldRole = "product_code"
	RoleOrderDate       FieldRole = "order_date"
	RoleOrderMark       FieldRole = "order_mark"
	RoleDeliveryMethod  FieldRole = "delivery_method"
	RoleStoreName       FieldRole = "store_name"
	RoleArrivalTime     FieldRole = "arrival_time"
)

// FieldConfig describes one channel's spreadsheet vocabulary: which columns
// identify the channel, which must be present, and which column fills each
// semantic role. Vendors occasionally rename columns, so this is data rather
// than code.
type FieldConfig struct {
	IdentifyBy      []string
	RequiredColumns []string
	Columns         []string
	Roles           map[FieldRole]string
}

// Column returns the vendor column bound to a role, or "" when the channel
// does not carry that role.
func (c FieldConfig) Column(role FieldRole) string {
	return c.Roles[role]
}

// Shipping method literals as they appear in SHOPLINE exports.
const (
	ShippingSeven  = "7-11低溫取貨"
	ShippingFamily = "全家低溫取貨"
	ShippingTcat   = "低溫宅配"
)

// Company keys used by the store-address collaborator.
const (
	CompanySeven  = "SEVEN"
	CompanyFamily = "FAMILY"
)

// DefaultFieldConfigs holds the per-channel column bindings for the current
// vendor export versions.
var DefaultFieldConfigs = map[Platform]FieldConfig{
	C2C: {
		IdentifyBy:      []string{"平台訂單編號", "商品編號", "商品樣式"},
		RequiredColumns: []string{"平台訂單編號", "收件者姓名", "收件者手機", "收件者地址", "商品樣式", "小計數量"},
		Columns: []string{
			"填單日期", "建立時間", "平台訂單編號", "交易序號", "收件者姓名",
			"收件者手機", "收件者地址", "商品編號", "商品樣式", "小計數量",
			"交易金額", "出貨備註", "廠商發貨日期", "配送編號-已出貨", "狀態回填-已送達",
		},
		Roles: map[FieldRole]string{
			RoleOrderID:         "平台訂單編號",
			RoleReceiverName:    "收件者姓名",
			RoleReceiverPhone:   "收件者手機",
			RoleReceiverAddress: "收件者地址",
			RoleProductCode:     "商品編號",
			RoleProductName:     "商品樣式",
			RoleProductQuantity: "小計數量",
			RoleOrderMark:       "出貨備註",
			RoleOrderDate:       "建立時間",
		},
	},
	Shopline: {
		// Some SHOPLINE exports omit 商品貨號, so identification relies on
		// the more stable order/shipping columns.
		IdentifyBy:      []string{"訂單號碼", "送貨方式", "收件人電話號碼"},
		RequiredColumns: []string{"訂單號碼", "收件人", "收件人電話號碼", "商品名稱", "數量", "送貨方式"},
		Columns: []string{
			"訂單號碼", "訂單日期", "訂單狀態", "付款狀態", "訂單備註",
			"送貨方式", "送貨狀態", "收件人", "收件人電話號碼", "門市名稱",
			"商品貨號", "商品名稱", "選項", "數量", "完整地址",
			"管理員備註", "出貨備註", "到貨時間",
		},
		Roles: map[FieldRole]string{
			RoleOrderID:         "訂單號碼",
			RoleReceiverName:    "收件人",
			RoleReceiverPhone:   "收件人電話號碼",
			RoleReceiverAddress: "完整地址",
			RoleProductCode:     "商品貨號",
			RoleProductName:     "商品名稱",
			RoleProductQuantity: "數量",
			RoleOrderDate:       "訂單日期",
			RoleOrderMark:       "出貨備註",
			RoleDeliveryMethod:  "送貨方式",
			RoleStoreName:       "門市名稱",
			RoleArrivalTime:     "到貨時間",
		},
	},
	Mixx: {
		IdentifyBy:      []string{"*銷售單號", "品名/規格", "採購數量"},
		RequiredColumns: []string{"*銷售單號", "收件人", "收件人手機", "收件地址", "品名/規格", "採購數量"},
		Columns: []string{
			"*銷售單號", "收件人", "收件人手機", "收件地址", "品名/規格",
			"採購數量", "單價", "進價小計", "銷售單價", "銷售小計",
			"運費", "備註", "配送物流", "寄件查詢編號",
		},
		Roles: map[FieldRole]string{
			RoleOrderID:         "*銷售單號",
			RoleReceiverName:    "收件人",
			RoleReceiverPhone:   "收件人手機",
			RoleReceiverAddress: "收件地址",
			RoleProductName:     "品名/規格",
			RoleProductQuantity: "採購數量",
			RoleOrderMark:       "備註",
		},
	},
	Aoshi: {
		IdentifyBy:      []string{"團購名稱", "訂單日期(年月日)", "商品代碼"},
		RequiredColumns: []string{"訂單號碼", "收件人姓名", "收件人地址", "收件人電話", "商品名稱", "商品數量"},
		Columns: []string{
			"團購名稱", "訂單號碼", "訂單日期(年月日)", "訂單狀態", "付款方式",
			"付款狀態", "訂單總計(含運費)", "已付金額", "運費(總金額)", "訂購人姓名",
			"收件人姓名", "收件人地址", "收件人電話", "收件人Email", "客戶備註",
			"商品代碼", "國際條碼", "商品名稱", "商品數量", "商品金額小計",
		},
		Roles: map[FieldRole]string{
			RoleOrderID:         "訂單號碼",
			RoleReceiverName:    "收件人姓名",
			RoleReceiverPhone:   "收件人電話",
			RoleReceiverAddress: "收件人地址",
			RoleProductCode:     "商品代碼",
			RoleProductName:     "商品名稱",
			RoleProductQuantity: "商品數量",
			RoleOrderDate:       "訂單日期(年月日)",
			RoleOrderMark:       "客戶備註",
		},
	},
}
