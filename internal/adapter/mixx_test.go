package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowcarbmkt/order-report/internal/order"
	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

func mixxRow(overrides map[string]string) platform.RawRow {
	row := platform.RawRow{
		"*銷售單號": "S1001",
		"收件人":   "張小芳",
		"收件人手機": "0955666777",
		"收件地址":  "高雄市左營區博愛路99號",
		"品名/規格": "減醣市集｜低糖草莓乳酪貝果 (2入)",
		"採購數量":  "1",
		"備註":    "",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestMixxConvert(t *testing.T) {
	a := newTestAdapter(t, platform.Mixx)

	result := a.Convert([]platform.RawRow{mixxRow(nil)}, nil)

	require.Len(t, result.Items, 1)
	require.Empty(t, result.Errors)

	item := result.Items[0]
	assert.Equal(t, "S1001", item.OrderID)
	assert.Equal(t, utils.CurrentDateYYYYMMDD(), item.OrderDate)
	assert.Equal(t, "bagel001-2EA", item.ProductCode)
	assert.Equal(t, order.DeliveryTcat, item.DeliveryMethod)
	assert.Equal(t, "MIXX", item.SourcePlatform)
	assert.Equal(t, "減醣市集 X MIXX團購", item.OrderMark)
}

func TestMixxConvertWithoutChannelPrefix(t *testing.T) {
	a := newTestAdapter(t, platform.Mixx)

	row := mixxRow(map[string]string{"品名/規格": "低糖草莓乳酪貝果 (2入)"})

	result := a.Convert([]platform.RawRow{row}, nil)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "bagel001-2EA", result.Items[0].ProductCode)
}

func TestMixxUnknownProduct(t *testing.T) {
	a := newTestAdapter(t, platform.Mixx)

	row := mixxRow(map[string]string{"品名/規格": "減醣市集｜不存在的商品"})

	result := a.Convert([]platform.RawRow{row}, nil)

	require.Len(t, result.Items, 1)
	assert.Equal(t, order.ErrorProductCode, result.Items[0].ProductCode)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, order.SeverityWarning, result.Errors[0].Severity)
	assert.Contains(t, result.Errors[0].Message, "不存在的商品")
}

func TestMixxOrderMarkFromNoteColumn(t *testing.T) {
	a := newTestAdapter(t, platform.Mixx)

	row := mixxRow(map[string]string{"備註": "電梯大樓"})

	result := a.Convert([]platform.RawRow{row}, nil)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "減醣市集 X MIXX團購/電梯大樓", result.Items[0].OrderMark)
}

func TestMixxSkipsBlankTrailingRows(t *testing.T) {
	a := newTestAdapter(t, platform.Mixx)

	rows := []platform.RawRow{
		mixxRow(nil),
		mixxRow(map[string]string{"*銷售單號": ""}),
	}

	result := a.Convert(rows, nil)

	assert.Len(t, result.Items, 1)
}

func TestMixxFractionalQuantity(t *testing.T) {
	a := newTestAdapter(t, platform.Mixx)

	row := mixxRow(map[string]string{"採購數量": "2.0"})

	result := a.Convert([]platform.RawRow{row}, nil)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Quantity)
}
