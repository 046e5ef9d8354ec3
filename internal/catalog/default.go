package catalog

// Default returns the built-in product table, used when no catalog file is
// configured. Operators normally replace it through the import workflow.
func Default() *Catalog {
	c := New()
	c.Set("bagel101-1PK-999", ProductInfo{Qty: 14, MixxName: []string{"減醣貝果14天體驗組 (14入)"}, C2CCode: []string{"L2503F00048"}, C2CName: []string{"減醣市集 減醣貝果14天體驗組-F"}})
	c.Set("bagel101-1PK-1299", ProductInfo{Qty: 20, MixxName: []string{"減醣貝果14天體驗組 (20入)"}, C2CCode: []string{}, C2CName: []string{}})
	c.Set("bagel101-3PK", ProductInfo{Qty: 7, MixxName: []string{"貝果全系列綜合禮包 (7入)", "減醣市集 貝果綜合禮包(7入)"}, C2CCode: []string{}, C2CName: []string{}})
	c.Set("bagel001-2EA", ProductInfo{Qty: 2, MixxName: []string{"低糖草莓乳酪貝果 (2入)"}, C2CCode: []string{"F2500000044-0", "L2503F00172"}, C2CName: []string{"草莓乳酪2入+藍莓乳酪2入(贈品)-F", "草莓乳酪-2入組"}, AoshiName: []string{"減醣市集｜低糖草莓乳酪貝果 (2入)"}})
	c.Set("bagel002-2EA", ProductInfo{Qty: 2, MixxName: []string{"日式香醇芝麻乳酪貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"芝麻乳酪-2入組"}})
	c.Set("bagel003-2EA", ProductInfo{Qty: 2, MixxName: []string{"宇治抹茶紅豆貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"抹茶紅豆-2入組"}, AoshiName: []string{"減醣市集｜宇治抹茶紅豆貝果 (2入)"}})
	c.Set("bagel004-2EA", ProductInfo{Qty: 2, MixxName: []string{"低糖藍莓乳酪貝果 (2入)"}, C2CCode: []string{"F2500000044-1", "L2503F00172"}, C2CName: []string{"藍莓乳酪-2入組"}, AoshiName: []string{"減醣市集｜低糖藍莓乳酪貝果 (2入)"}})
	c.Set("bagel005-2EA", ProductInfo{Qty: 2, MixxName: []string{"經典輕盈原味貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"經典原味-2入組"}})
	c.Set("bagel006-2EA", ProductInfo{Qty: 2, MixxName: []string{"濃郁起司乳酪丁貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"起司乳酪-2入組"}, AoshiName: []string{"減醣市集｜濃郁起司乳酪丁貝果 (2入)"}})
	c.Set("bagel007-2EA", ProductInfo{Qty: 2, MixxName: []string{"法式AOP極致奶油貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"鹹香奶油-2入組"}})
	c.Set("bagel008-2EA", ProductInfo{Qty: 2, MixxName: []string{"開心果乳酪貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"開心果乳酪-2入組"}, AoshiName: []string{"減醣市集｜西西里開心果乳酪貝果 (2入)"}})
	c.Set("bagel009-2EA", ProductInfo{Qty: 2, MixxName: []string{"伯爵高蛋白奶酥貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"伯爵蛋白奶酥-2入組"}, AoshiName: []string{"減醣市集｜伯爵高蛋白奶酥能量貝果 (2入)"}})
	c.Set("bagel010-2EA", ProductInfo{Qty: 2, MixxName: []string{"原味高蛋白奶酥貝果 (2入)"}, C2CCode: []string{"L2503F00172"}, C2CName: []string{"原味蛋白奶酥-2入組"}})
	c.Set("box60-EA", ProductInfo{Qty: 0, MixxName: []string{}, C2CCode: []string{}, C2CName: []string{}})
	c.Set("box90-EA", ProductInfo{Qty: 0, MixxName: []string{}, C2CCode: []string{}, C2CName: []string{}})
	return c
}
