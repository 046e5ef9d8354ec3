package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/platform"
	"github.com/lowcarbmkt/order-report/internal/report"
)

func exportBytes(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, cells := range rows {
		for j, value := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr("Sheet1", cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadOrders(t *testing.T) {
	r := exportBytes(t, [][]string{
		{"訂單號碼", "收件人", "數量"},
		{"A1", "王小明", "2"},
		{"A2", "陳小美", ""},
	})

	rows, err := ReadOrders(r)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[0]["訂單號碼"])
	assert.Equal(t, "王小明", rows[0]["收件人"])
	assert.Equal(t, "2", rows[0]["數量"])
	// trailing blank cells still map to their header
	assert.Equal(t, "", rows[1]["數量"])
}

func TestReadOrdersBlankHeadersBecomeUnnamed(t *testing.T) {
	r := exportBytes(t, [][]string{
		{"訂單號碼", "", "數量"},
		{"A1", "junk", "2"},
	})

	rows, err := ReadOrders(r)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "junk", rows[0]["Unnamed: 1"])
}

func TestReadOrdersHeaderOnly(t *testing.T) {
	r := exportBytes(t, [][]string{{"訂單號碼", "收件人"}})

	rows, err := ReadOrders(r)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSortByOrderID(t *testing.T) {
	cfg := platform.DefaultFieldConfigs[platform.Shopline]
	rows := []platform.RawRow{
		{"訂單號碼": "B2", "商品名稱": "x"},
		{"訂單號碼": "A1", "商品名稱": "y"},
		{"訂單號碼": "B2", "商品名稱": "z"},
	}

	sorted := SortByOrderID(rows, cfg)

	assert.Equal(t, "A1", sorted[0]["訂單號碼"])
	assert.Equal(t, "B2", sorted[1]["訂單號碼"])
	// stable: the two B2 lines keep their relative order
	assert.Equal(t, "x", sorted[1]["商品名稱"])
	assert.Equal(t, "z", sorted[2]["商品名稱"])

	// input untouched
	assert.Equal(t, "B2", rows[0]["訂單號碼"])
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter(zap.NewNop())

	rows := []report.OrderRow{
		{
			report.ColOwnerID:      report.OwnerID,
			report.ColOwnerOrderNo: "S1001",
			report.ColProductCode:  "bagel001-2EA",
			report.ColQuantity:     "2",
			report.ColTemperature:  report.TemperatureFrozen,
		},
		{
			report.ColOwnerOrderNo: "S1002",
			report.ColProductCode:  "ERROR",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, w.Write(rows, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// header carries every template column in order
	require.Len(t, got[0], len(report.TemplateColumns))
	assert.Equal(t, report.TemplateColumns[0], got[0][0])

	assert.Equal(t, report.OwnerID, got[1][0])
	assert.Contains(t, got[1], "bagel001-2EA")
	assert.Contains(t, got[2], "ERROR")
}

func TestWriterEmptyRows(t *testing.T) {
	w := NewWriter(zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, w.Write(nil, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestIsErrorValue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "ERROR", want: true},
		{value: "ERROR-需拆單", want: true},
		{value: "ERROR: 查詢失敗 - 門市", want: true},
		{value: "nan", want: true},
		{value: "NaN", want: true},
		{value: "bagel001-2EA", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isErrorValue(tt.value), tt.value)
	}
}
