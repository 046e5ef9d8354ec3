package order

import (
	"strings"

	"github.com/lowcarbmkt/order-report/internal/catalog"
)

// BoxType is a shipping carton tier.
type BoxType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	// BoxSmall fits up to 14 packed units.
	BoxSmall = BoxType{Code: "box60-EA", Name: "60公分紙箱"}
	// BoxLarge fits up to 47 packed units.
	BoxLarge = BoxType{Code: "box90-EA", Name: "90公分紙箱"}
	// BoxSplit flags an order too big for one carton; a human must split it.
	BoxSplit = BoxType{Code: "ERROR-需拆單", Name: "ERROR-需拆單"}
)

const (
	smallBoxCapacity = 14
	largeBoxCapacity = 47
)

// NeedsSplit reports whether the box computation failed to fit the order.
func (b BoxType) NeedsSplit() bool {
	return strings.Contains(b.Code, "ERROR")
}

// BoxItem is the slice of an item the box computation cares about.
type BoxItem struct {
	ProductCode string
	Quantity    int
}

// TotalUnits sums packed units for one order. Items with an empty, "nan" or
// sentinel ERROR product code contribute nothing; unknown codes count as 0
// units (the caller logs those as data-quality findings).
func TotalUnits(items []BoxItem, cat *catalog.Catalog) int {
	total := 0
	for _, item := range items {
		if item.ProductCode == "" || item.ProductCode == "nan" || strings.Contains(item.ProductCode, "ERROR") {
			continue
		}
		total += cat.Qty(item.ProductCode) * item.Quantity
	}
	return total
}

// BoxForUnits selects the carton tier for a unit total.
func BoxForUnits(totalUnits int) BoxType {
	switch {
	case totalUnits <= smallBoxCapacity:
		return BoxSmall
	case totalUnits <= largeBoxCapacity:
		return BoxLarge
	default:
		return BoxSplit
	}
}

// ComputeBox selects the carton for one order's items. Pure and
// deterministic given the catalog snapshot.
func ComputeBox(items []BoxItem, cat *catalog.Catalog) BoxType {
	return BoxForUnits(TotalUnits(items, cat))
}
