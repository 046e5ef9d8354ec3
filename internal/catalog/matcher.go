package catalog

import (
	"strings"

	"github.com/lowcarbmkt/order-report/pkg/utils"
)

// MatchKind selects which alias list a lookup runs against.
type MatchKind string

const (
	MatchMixxName  MatchKind = "mixx_name"
	MatchC2CCode   MatchKind = "c2c_code"
	MatchAoshiName MatchKind = "aoshi_name"
)

// Matcher resolves vendor-supplied product names and codes to internal
// product codes. It holds a normalized alias index built once from a catalog
// snapshot; build one per processing run and share it read-only.
type Matcher struct {
	catalog *Catalog
	index   map[string]entryAliases
}

type entryAliases struct {
	mixxNames  []string
	c2cNames   []string
	aoshiNames []string
}

// NewMatcher builds the alias index for one catalog snapshot.
func NewMatcher(cat *Catalog) *Matcher {
	index := make(map[string]entryAliases, cat.Len())
	for _, code := range cat.Codes() {
		info, _ := cat.Get(code)
		index[code] = entryAliases{
			mixxNames:  normalizeAll(info.MixxName),
			c2cNames:   normalizeAll(info.C2CName),
			aoshiNames: normalizeAll(info.AoshiName),
		}
	}
	return &Matcher{catalog: cat, index: index}
}

// Resolve maps a vendor value to an internal product code. aux carries the
// C2C style name used by the name-match phase; other kinds ignore it. The
// boolean is false when no catalog entry matches — callers decide whether
// that is a warning.
//
// Entries are scanned in catalog insertion order, so overlapping aliases
// always resolve to the earliest entry and results are reproducible.
func (m *Matcher) Resolve(searchValue string, kind MatchKind, aux string) (string, bool) {
	switch kind {
	case MatchMixxName:
		// MIXX listings prepend "減醣市集｜" while the catalog aliases carry
		// the bare name; AOSHI aliases keep the prefix, so only MIXX strips.
		return m.resolveByName(stripChannelPrefix(searchValue), func(a entryAliases) []string { return a.mixxNames })
	case MatchAoshiName:
		return m.resolveByName(searchValue, func(a entryAliases) []string { return a.aoshiNames })
	case MatchC2CCode:
		return m.resolveC2C(searchValue, aux)
	}
	return "", false
}

// resolveByName is an exact match after normalization.
func (m *Matcher) resolveByName(searchValue string, aliases func(entryAliases) []string) (string, bool) {
	search := normalizeName(searchValue)
	if search == "" {
		return "", false
	}
	for _, code := range m.catalog.Codes() {
		for _, name := range aliases(m.index[code]) {
			if search == name {
				return code, true
			}
		}
	}
	return "", false
}

// resolveC2C runs both match phases against each entry in catalog order.
// Phase 1 compares the style name (aux, "-F" suffix stripped) against the
// entry's c2c_name aliases with containment in either direction; phase 2
// checks whether the raw code value contains one of the entry's c2c_code
// aliases. Within an entry phase 1 is tried first; the first entry
// satisfying either phase wins.
func (m *Matcher) resolveC2C(searchValue, styleName string) (string, bool) {
	normalizedStyle := normalizeName(strings.TrimSuffix(utils.SafeString(styleName), "-F"))

	for _, code := range m.catalog.Codes() {
		if normalizedStyle != "" {
			for _, name := range m.index[code].c2cNames {
				if name == "" {
					continue
				}
				if strings.Contains(normalizedStyle, name) || strings.Contains(name, normalizedStyle) {
					return code, true
				}
			}
		}

		info, _ := m.catalog.Get(code)
		for _, codeAlias := range info.C2CCode {
			if codeAlias != "" && strings.Contains(searchValue, codeAlias) {
				return code, true
			}
		}
	}
	return "", false
}

// normalizeName folds the full-width space into a regular space, collapses
// whitespace runs and trims. Product aliases are hand-typed across vendor
// back-offices and spacing is never consistent.
func normalizeName(s string) string {
	s = strings.ReplaceAll(utils.SafeString(s), "　", " ")
	return strings.Join(strings.Fields(s), " ")
}

func normalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = normalizeName(n)
	}
	return out
}

func stripChannelPrefix(name string) string {
	if i := strings.Index(name, "｜"); i >= 0 {
		return name[i+len("｜"):]
	}
	return name
}
