package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/store"
)

func newTestAdapter(t *testing.T, p platform.Platform) Adapter {
	t.Helper()
	a, err := New(p, platform.DefaultFieldConfigs[p], catalog.NewMatcher(catalog.Default()), zap.NewNop())
	require.NoError(t, err)
	return a
}

func shoplineRow(overrides map[string]string) platform.RawRow {
	row := platform.RawRow{
		"訂單號碼":    "SL2001",
		"訂單日期":    "2024-12-25 10:00:00",
		"收件人":     "陳小美",
		"收件人電話號碼": "0987654321",
		"完整地址":    "新北市板橋區文化路100號",
		"送貨方式":    "低溫宅配",
		"門市名稱":    "",
		"商品貨號":    "SL-BG-459",
		"商品名稱":    "原味貝果(6入)",
		"選項":      "",
		"數量":      "2",
		"出貨備註":    "",
		"到貨時間":    "",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestShoplineConvertHomeDelivery(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	result := a.Convert([]platform.RawRow{shoplineRow(nil)}, store.NewAddressBook())

	require.Len(t, result.Items, 1)
	require.Empty(t, result.Errors)

	item := result.Items[0]
	assert.Equal(t, "SL2001", item.OrderID)
	assert.Equal(t, "20241225", item.OrderDate)
	assert.Equal(t, order.DeliveryTcat, item.DeliveryMethod)
	assert.Equal(t, "新北市板橋區文化路100號", item.ReceiverAddress)
	assert.Equal(t, "SL-BG-459", item.ProductCode)
	assert.Equal(t, "原味貝果(6入)-459", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "SHOPLINE", item.SourcePlatform)
	assert.Equal(t, "減醣市集", item.OrderMark)
}

func TestShoplineConvertDropsEmptyProductCode(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	// bundle parent lines come without a product code and are skipped
	// without an error entry
	rows := []platform.RawRow{
		shoplineRow(map[string]string{"商品貨號": ""}),
		shoplineRow(map[string]string{"商品貨號": "nan"}),
		shoplineRow(nil),
	}

	result := a.Convert(rows, store.NewAddressBook())

	assert.Len(t, result.Items, 1)
	assert.Empty(t, result.Errors)
}

func TestShoplineSevenPickup(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	book := store.NewAddressBook()
	book.Seven["松高門市"] = "台北市信義區松高路11號"

	row := shoplineRow(map[string]string{
		"送貨方式": "7-11低溫取貨（統一超商）",
		"門市名稱": "松高門市",
	})

	result := a.Convert([]platform.RawRow{row}, book)

	require.Len(t, result.Items, 1)
	require.Empty(t, result.Errors)
	assert.Equal(t, order.DeliverySeven, result.Items[0].DeliveryMethod)
	assert.Equal(t, "(宅轉店)台北市信義區松高路11號", result.Items[0].ReceiverAddress)
}

func TestShoplineFamilyPickup(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	book := store.NewAddressBook()
	book.Family["板橋門市"] = "新北市板橋區中山路5號"

	row := shoplineRow(map[string]string{
		"送貨方式": "全家低溫取貨",
		"門市名稱": "板橋門市",
	})

	result := a.Convert([]platform.RawRow{row}, book)

	require.Len(t, result.Items, 1)
	require.Empty(t, result.Errors)
	assert.Equal(t, order.DeliveryFamily, result.Items[0].DeliveryMethod)
	assert.Equal(t, "板橋門市 (新北市板橋區中山路5號)", result.Items[0].ReceiverAddress)
}

func TestShoplineMissingStoreIsHardError(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	row := shoplineRow(map[string]string{
		"送貨方式": "全家低溫取貨",
		"門市名稱": "不存在門市",
	})

	result := a.Convert([]platform.RawRow{row}, store.NewAddressBook())

	require.Len(t, result.Items, 1)
	assert.Equal(t, order.ErrorAddress, result.Items[0].ReceiverAddress)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, order.SeverityError, result.Errors[0].Severity)
	assert.Contains(t, result.Errors[0].Message, "不存在門市")
}

func TestShoplineNilAddressBookIsHardError(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	row := shoplineRow(map[string]string{
		"送貨方式": "7-11低溫取貨",
		"門市名稱": "松高門市",
	})

	result := a.Convert([]platform.RawRow{row}, nil)

	require.Len(t, result.Items, 1)
	assert.Equal(t, order.ErrorAddress, result.Items[0].ReceiverAddress)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, order.SeverityError, result.Errors[0].Severity)
}

func TestShoplineFailedLookupAddressFlowsThrough(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	// a failed lookup stores an ERROR-prefixed address; the row keeps it so
	// the report cell turns red for exactly that store
	book := store.NewAddressBook()
	book.Seven["松高門市"] = "ERROR: 查詢失敗 - 松高門市"

	row := shoplineRow(map[string]string{
		"送貨方式": "7-11低溫取貨",
		"門市名稱": "松高門市",
	})

	result := a.Convert([]platform.RawRow{row}, book)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "ERROR: 查詢失敗 - 松高門市", result.Items[0].ReceiverAddress)
	assert.Len(t, result.Errors, 1)
}

func TestShoplineUnknownShippingMethod(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	row := shoplineRow(map[string]string{"送貨方式": "黑貓常溫"})

	result := a.Convert([]platform.RawRow{row}, store.NewAddressBook())

	require.Len(t, result.Items, 1)
	assert.Equal(t, order.DeliveryUnknown, result.Items[0].DeliveryMethod)
	assert.Equal(t, "新北市板橋區文化路100號", result.Items[0].ReceiverAddress)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, order.SeverityWarning, result.Errors[0].Severity)
}

func TestShoplineProductNameFallsBackToOption(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	row := shoplineRow(map[string]string{
		"商品名稱": "",
		"選項":   "芝麻口味",
	})

	result := a.Convert([]platform.RawRow{row}, store.NewAddressBook())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "芝麻口味-459", result.Items[0].ProductName)
}

func TestShoplineArrivalTime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "上午到貨", want: "1"},
		{raw: "下午到貨", want: "2"},
		{raw: "", want: ""},
		{raw: "任何時段", want: ""},
	}

	a := newTestAdapter(t, platform.Shopline)
	for _, tt := range tests {
		row := shoplineRow(map[string]string{"到貨時間": tt.raw})
		result := a.Convert([]platform.RawRow{row}, store.NewAddressBook())
		require.Len(t, result.Items, 1, tt.raw)
		assert.Equal(t, tt.want, result.Items[0].ArrivalTime, tt.raw)
	}
}

func TestShoplineOrderMarkCarriesNote(t *testing.T) {
	a := newTestAdapter(t, platform.Shopline)

	row := shoplineRow(map[string]string{"出貨備註": "易碎請小心"})

	result := a.Convert([]platform.RawRow{row}, store.NewAddressBook())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "減醣市集/易碎請小心", result.Items[0].OrderMark)
}
