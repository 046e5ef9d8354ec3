package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherFixture() *Matcher {
	cat := New()
	cat.Set("bagel001-2EA", ProductInfo{
		Qty:       2,
		MixxName:  []string{"低糖草莓乳酪貝果 (2入)"},
		C2CCode:   []string{"F2500000044-0", "L2503F00172"},
		C2CName:   []string{"草莓乳酪2入+藍莓乳酪2入(贈品)-F", "草莓乳酪-2入組"},
		AoshiName: []string{"減醣市集｜低糖草莓乳酪貝果 (2入)"},
	})
	cat.Set("bagel004-2EA", ProductInfo{
		Qty:       2,
		MixxName:  []string{"低糖藍莓乳酪貝果 (2入)"},
		C2CCode:   []string{"F2500000044-1", "L2503F00172"},
		C2CName:   []string{"藍莓乳酪-2入組"},
		AoshiName: []string{"減醣市集｜低糖藍莓乳酪貝果 (2入)"},
	})
	return NewMatcher(cat)
}

func TestResolveMixxName(t *testing.T) {
	m := matcherFixture()

	tests := []struct {
		name     string
		search   string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "bare name matches",
			search:   "低糖草莓乳酪貝果 (2入)",
			wantCode: "bagel001-2EA",
			wantOK:   true,
		},
		{
			name:     "channel prefix is stripped",
			search:   "減醣市集｜低糖草莓乳酪貝果 (2入)",
			wantCode: "bagel001-2EA",
			wantOK:   true,
		},
		{
			name:     "full-width space folds to regular space",
			search:   "低糖草莓乳酪貝果　(2入)",
			wantCode: "bagel001-2EA",
			wantOK:   true,
		},
		{
			name:     "whitespace runs collapse",
			search:   "  低糖草莓乳酪貝果   (2入)  ",
			wantCode: "bagel001-2EA",
			wantOK:   true,
		},
		{
			name:   "partial name does not match",
			search: "草莓乳酪貝果",
			wantOK: false,
		},
		{
			name:   "empty",
			search: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := m.Resolve(tt.search, MatchMixxName, "")
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestResolveAoshiNameKeepsPrefix(t *testing.T) {
	m := matcherFixture()

	// the catalog alias carries the channel prefix, so the raw listing
	// name must match as-is
	code, ok := m.Resolve("減醣市集｜低糖藍莓乳酪貝果 (2入)", MatchAoshiName, "")
	require.True(t, ok)
	assert.Equal(t, "bagel004-2EA", code)

	_, ok = m.Resolve("低糖藍莓乳酪貝果 (2入)", MatchAoshiName, "")
	assert.False(t, ok)
}

func TestResolveC2CByStyleName(t *testing.T) {
	m := matcherFixture()

	tests := []struct {
		name     string
		code     string
		style    string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "style equals alias after -F strip",
			code:     "L2503F00999",
			style:    "草莓乳酪-2入組-F",
			wantCode: "bagel001-2EA",
			wantOK:   true,
		},
		{
			name:     "style contains alias",
			code:     "L2503F00999",
			style:    "限量 草莓乳酪-2入組 加購",
			wantCode: "bagel001-2EA",
			wantOK:   true,
		},
		{
			name:     "alias contains style",
			code:     "L2503F00999",
			style:    "藍莓乳酪-2入組",
			wantCode: "bagel004-2EA",
			wantOK:   true,
		},
		{
			name:   "no alias relation",
			code:   "X000",
			style:  "完全不同的商品",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := m.Resolve(tt.code, MatchC2CCode, tt.style)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestResolveC2CByCodeAlias(t *testing.T) {
	m := matcherFixture()

	code, ok := m.Resolve("F2500000044-1", MatchC2CCode, "")
	require.True(t, ok)
	assert.Equal(t, "bagel004-2EA", code)

	// raw value containing the alias still matches
	code, ok = m.Resolve("ORDER/F2500000044-1/X", MatchC2CCode, "")
	require.True(t, ok)
	assert.Equal(t, "bagel004-2EA", code)
}

func TestResolveC2CCatalogOrderWins(t *testing.T) {
	// both entries share the L2503F00172 code alias; the earlier catalog
	// entry must win when only phase 2 can decide
	m := matcherFixture()

	code, ok := m.Resolve("L2503F00172", MatchC2CCode, "")
	require.True(t, ok)
	assert.Equal(t, "bagel001-2EA", code)
}

func TestResolveC2CNamePhaseBeatsCodePhase(t *testing.T) {
	// the raw code matches bagel001's code alias by containment, but the
	// style name points at bagel004; entries are scanned in order and the
	// first entry has no name match, so bagel001 still wins on its code
	// alias before bagel004 is reached
	m := matcherFixture()

	code, ok := m.Resolve("L2503F00172", MatchC2CCode, "藍莓乳酪-2入組")
	require.True(t, ok)
	assert.Equal(t, "bagel001-2EA", code)
}

func TestResolveUnknownKind(t *testing.T) {
	m := matcherFixture()
	_, ok := m.Resolve("anything", MatchKind("unknown"), "")
	assert.False(t, ok)
}
