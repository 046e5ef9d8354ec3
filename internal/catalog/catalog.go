package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ProductInfo is one catalog entry: how many packed units one sale unit of
// the product occupies, plus the vendor-facing aliases used to recognize it
// on each channel. Box-material codes carry qty 0.
type ProductInfo struct {
	Qty       int      `json:"qty"`
	MixxName  []string `json:"mixx_name"`
	C2CCode   []string `json:"c2c_code"`
	C2CName   []string `json:"c2c_name"`
	AoshiName []string `json:"aoshi_name,omitempty"`
}

// Catalog maps internal product codes to ProductInfo while preserving
// insertion order. Matching scans entries in this order, so two runs over
// the same catalog always resolve an ambiguous alias to the same product.
type Catalog struct {
	codes   []string
	entries map[string]ProductInfo
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]ProductInfo)}
}

// Set adds or replaces an entry. New codes append to the iteration order;
// existing codes keep their position.
func (c *Catalog) Set(code string, info ProductInfo) {
	if _, ok := c.entries[code]; !ok {
		c.codes = append(c.codes, code)
	}
	c.entries[code] = info
}

// Get looks up an entry by internal product code.
func (c *Catalog) Get(code string) (ProductInfo, bool) {
	info, ok := c.entries[code]
	return info, ok
}

// Qty returns the packed-unit count for a product, 0 when unknown.
func (c *Catalog) Qty(code string) int {
	return c.entries[code].Qty
}

// Codes returns product codes in insertion order. Callers must not mutate
// the returned slice.
func (c *Catalog) Codes() []string {
	return c.codes
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.codes)
}

// ParseJSON builds a catalog from an operator-maintained JSON object keyed
// by product code. Object key order is preserved because it decides which
// entry wins when aliases overlap. Malformed input returns an error without
// producing a partial catalog.
func ParseJSON(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("商品設定格式不正確: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("商品設定必須是 JSON 物件")
	}

	cat := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("商品設定格式不正確: %w", err)
		}
		code, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("商品設定格式不正確: 鍵值不是字串")
		}

		var info ProductInfo
		if err := dec.Decode(&info); err != nil {
			return nil, fmt.Errorf("商品 %q 設定格式不正確: %w", code, err)
		}
		cat.Set(code, info)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("商品設定格式不正確: %w", err)
	}
	return cat, nil
}

// ExportJSON renders the catalog as pretty-printed JSON in insertion order,
// suitable for the operator's export/edit/import workflow.
func (c *Catalog) ExportJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, code := range c.codes {
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.entries[code])
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(c.codes)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// LoadFile reads a catalog JSON file from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("讀取商品設定失敗: %w", err)
	}
	return ParseJSON(data)
}
