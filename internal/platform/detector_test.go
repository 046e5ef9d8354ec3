package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWithColumns(cols ...string) RawRow {
	row := make(RawRow, len(cols))
	for _, c := range cols {
		row[c] = "x"
	}
	return row
}

func TestDetectFullMatch(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    Platform
	}{
		{
			name:    "c2c export",
			columns: []string{"平台訂單編號", "商品編號", "商品樣式", "收件者姓名"},
			want:    C2C,
		},
		{
			name:    "shopline export",
			columns: []string{"訂單號碼", "送貨方式", "收件人電話號碼", "商品名稱"},
			want:    Shopline,
		},
		{
			name:    "mixx export",
			columns: []string{"*銷售單號", "品名/規格", "採購數量", "收件人"},
			want:    Mixx,
		},
		{
			name:    "aoshi export",
			columns: []string{"團購名稱", "訂單日期(年月日)", "商品代碼", "訂單號碼"},
			want:    Aoshi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect([]RawRow{rowWithColumns(tt.columns...)}, DefaultFieldConfigs)

			assert.Equal(t, tt.want, result.Detected)
			assert.Equal(t, 100.0, result.Confidence)
			assert.Len(t, result.AllScores, len(Platforms))
		})
	}
}

func TestDetectPartialMatchLeavesDetectedEmpty(t *testing.T) {
	// two of three MIXX identifying columns
	rows := []RawRow{rowWithColumns("*銷售單號", "品名/規格", "收件人")}

	result := Detect(rows, DefaultFieldConfigs)

	assert.Empty(t, result.Detected)
	require.NotEmpty(t, result.AllScores)
	assert.Equal(t, Mixx, result.AllScores[0].Platform)
	assert.InDelta(t, 100.0*2/3, result.Confidence, 0.01)
	assert.ElementsMatch(t, []string{"*銷售單號", "品名/規格"}, result.MatchedColumns)
}

func TestDetectEmptyInput(t *testing.T) {
	result := Detect(nil, DefaultFieldConfigs)

	assert.Empty(t, result.Detected)
	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.AllScores)
}

func TestDetectIgnoresUnnamedColumns(t *testing.T) {
	row := rowWithColumns("平台訂單編號", "商品編號", "商品樣式")
	row["Unnamed: 5"] = "junk"
	row["Unnamed: 6"] = ""

	result := Detect([]RawRow{row}, DefaultFieldConfigs)

	assert.Equal(t, C2C, result.Detected)
	for _, score := range result.AllScores {
		assert.NotContains(t, score.Matched, "Unnamed: 5")
	}
}

func TestDetectIndependentOfColumnOrder(t *testing.T) {
	// detection reads a column set; two files with the same columns in
	// different order must score identically
	a := Detect([]RawRow{rowWithColumns("團購名稱", "訂單日期(年月日)", "商品代碼")}, DefaultFieldConfigs)
	b := Detect([]RawRow{rowWithColumns("商品代碼", "團購名稱", "訂單日期(年月日)")}, DefaultFieldConfigs)

	assert.Equal(t, a.Detected, b.Detected)
	assert.Equal(t, a.Confidence, b.Confidence)
}

func TestDetectTieBreaksByConfigurationOrder(t *testing.T) {
	// no identifying column of any channel: all scores are zero and the
	// configured channel order decides the ranking
	result := Detect([]RawRow{rowWithColumns("完全無關的欄位")}, DefaultFieldConfigs)

	assert.Empty(t, result.Detected)
	require.Len(t, result.AllScores, len(Platforms))
	assert.Equal(t, Platforms[0], result.AllScores[0].Platform)
}
