package otname

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fontnames/internal/nametest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	langEnglishUS = 0x409
	langGerman    = 0x407
)

func TestDecodeShortTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	for n := 0; n < minTableSize; n++ {
		table := make([]byte, n)
		assert.True(t, Decode(table).IsEmpty(), "expected empty names for table of length %d", n)
	}
	assert.True(t, Decode(nil).IsEmpty(), "expected empty names for nil table")
}

func TestDecodeRejectsFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(nametest.Microsoft(1, langEnglishUS, "DejaVu Sans"))
	require.Equal(t, "DejaVu Sans", Decode(table).Family)
	table[1] = 1 // format 1
	assert.True(t, Decode(table).IsEmpty(), "expected format 1 table to be rejected")
}

func TestDecodeRejectsDirectoryOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Microsoft(1, langEnglishUS, "Family"),
		nametest.Microsoft(2, langEnglishUS, "Style"),
	)
	table[5] -= 1 // string storage now starts inside the record directory
	assert.True(t, Decode(table).IsEmpty(), "expected overlapping directory to be rejected")
	//
	table = nametest.Table(nametest.Microsoft(1, langEnglishUS, "Family"))
	table[3] = 100 // claim 100 records
	assert.True(t, Decode(table).IsEmpty(), "expected oversized directory to be rejected")
}

func TestDecodeRejectsStorageOutsideTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(nametest.Microsoft(1, langEnglishUS, "Family"))
	table[4], table[5] = 0xff, 0x00
	assert.True(t, Decode(table).IsEmpty())
}

func TestDecodeSingleRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(nametest.Microsoft(1, langEnglishUS, "DejaVu Sans"))
	names := Decode(table)
	want := Names{Family: "DejaVu Sans"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
}

func TestDecodeAllFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Microsoft(0, langEnglishUS, "Copyright nobody"),
		nametest.Microsoft(1, langEnglishUS, "DejaVu Sans Condensed"),
		nametest.Microsoft(2, langEnglishUS, "Italic"),
		nametest.Microsoft(4, langEnglishUS, "DejaVu Sans Condensed Italic"),
		nametest.Microsoft(16, langEnglishUS, "DejaVu Sans"),
		nametest.Microsoft(17, langEnglishUS, "Condensed Italic"),
	)
	want := Names{
		Family:          "DejaVu Sans Condensed",
		Style:           "Italic",
		PreferredFamily: "DejaVu Sans",
		PreferredStyle:  "Condensed Italic",
	}
	if diff := cmp.Diff(want, Decode(table)); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Condensed Italic", want.Get(FieldPreferredStyle))
	assert.Equal(t, "", want.Get(fieldCount))
}

func TestDecodeUnicodeOutranksApple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	mac, uni := nametest.Mac(1, "Foo"), nametest.Unicode(1, "Bar")
	assert.Equal(t, "Bar", Decode(nametest.Table(mac, uni)).Family)
	assert.Equal(t, "Bar", Decode(nametest.Table(uni, mac)).Family)
}

func TestDecodeMicrosoftOutranksUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	uni, ms := nametest.Unicode(1, "Uni"), nametest.Microsoft(1, langGerman, "Win")
	assert.Equal(t, "Win", Decode(nametest.Table(uni, ms)).Family)
	assert.Equal(t, "Win", Decode(nametest.Table(ms, uni)).Family)
}

func TestDecodeEnglishOverridesNonEnglish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	nonEng := nametest.Microsoft(1, langGerman, "FooNonEng")
	eng := nametest.Microsoft(1, langEnglishUS, "FooEng")
	assert.Equal(t, "FooEng", Decode(nametest.Table(nonEng, eng)).Family)
	assert.Equal(t, "FooEng", Decode(nametest.Table(eng, nonEng)).Family)
}

func TestDecodeLastEnglishWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Microsoft(1, langEnglishUS, "US"),
		nametest.Microsoft(1, 0x809, "UK"), // English (United Kingdom)
	)
	assert.Equal(t, "UK", Decode(table).Family)
}

func TestDecodeFirstNonEnglishWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Microsoft(1, langGerman, "Deutsch"),
		nametest.Microsoft(1, 0x40c, "Français"),
	)
	assert.Equal(t, "Deutsch", Decode(table).Family)
}

func TestDecodeFirstUnicodeAndAppleWin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Unicode(1, "First"),
		nametest.Unicode(1, "Second"),
		nametest.Mac(2, "Regular"),
		nametest.Mac(2, "Normal"),
	)
	names := Decode(table)
	assert.Equal(t, "First", names.Family)
	assert.Equal(t, "Regular", names.Style)
}

func TestDecodeIgnoresUnsupportedEncodings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	ucs4 := nametest.Unicode(1, "UCS4")
	ucs4.Encoding = 4
	msUCS4 := nametest.Microsoft(1, langEnglishUS, "MS UCS4")
	msUCS4.Encoding = 10
	macJapanese := nametest.Mac(1, "Japanese")
	macJapanese.Encoding = 1
	macFrench := nametest.Mac(1, "French")
	macFrench.Language = 1
	other := nametest.Microsoft(1, langEnglishUS, "ISO")
	other.Platform = 2
	table := nametest.Table(ucs4, msUCS4, macJapanese, macFrench, other)
	assert.True(t, Decode(table).IsEmpty(), "expected no name to be selected")
}

func TestDecodeSymbolEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	sym := nametest.Microsoft(1, langEnglishUS, "Wingdings")
	sym.Encoding = 0
	assert.Equal(t, "Wingdings", Decode(nametest.Table(sym)).Family)
}

func TestDecodeSkipsTruncatedString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Microsoft(1, langEnglishUS, "Family").WithSpan(200, 0),
		nametest.Microsoft(2, langEnglishUS, "Bold"),
	)
	names := Decode(table)
	assert.Equal(t, "", names.Family, "expected truncated family record to be skipped")
	assert.Equal(t, "Bold", names.Style, "expected style to be unaffected")
}

func TestDecodeTruncatedDoesNotOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Microsoft(1, langEnglishUS, "Good"),
		nametest.Microsoft(1, langEnglishUS, "Bad").WithSpan(6, 0xfff0),
	)
	assert.Equal(t, "Good", Decode(table).Family)
}

func TestDecodeAppleRoman(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(nametest.Mac(2, "Italic"))
	names := Decode(table)
	assert.Equal(t, Names{Style: "Italic"}, names)
}

func TestDecodeAppleZeroExtends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	mac := nametest.Mac(1, "")
	mac.Data = []byte{'A', 0xa5, 0xe9}
	table := nametest.Table(mac)
	assert.Equal(t, "A¥é", Decode(table).Family)
	assert.Equal(t, "A•È", Decode(table, UnicodeDecoding()).Family, "expected Mac Roman mapping")
}

func TestDecodeOddLengthUTF16(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	ms := nametest.Microsoft(1, langEnglishUS, "Sans")
	ms.Data = append(ms.Data, 'X')
	names := Decode(nametest.Table(ms))
	assert.Equal(t, "Sans", names.Family, "expected trailing odd byte to be dropped")
}

func TestDecodeSurrogates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(nametest.Microsoft(1, langEnglishUS, "A\U0001D11E"))
	assert.Equal(t, "A\uFFFD\uFFFD", Decode(table).Family, "expected one character per code unit")
	assert.Equal(t, "A\U0001D11E", Decode(table, UnicodeDecoding()).Family)
	assert.Equal(t, "A\uFFFD\uFFFD", Decode(table, UnicodeDecoding(), LegacyDecoding()).Family,
		"expected last option to win")
}

func TestDecodeUnpairedSurrogate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	ms := nametest.Microsoft(1, langEnglishUS, "A")
	ms.Data = append(ms.Data, 0xd8, 0x34, 0x00, 0x42) // high surrogate followed by 'B'
	table := nametest.Table(ms)
	assert.Equal(t, "A\uFFFDB", Decode(table).Family)
	assert.Equal(t, "A\uFFFDB", Decode(table, UnicodeDecoding()).Family)
}

func TestDecodeDoesNotModifyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontnames.otname")
	defer teardown()
	//
	table := nametest.Table(
		nametest.Mac(1, "Mac"),
		nametest.Unicode(2, "Uni"),
		nametest.Microsoft(16, langEnglishUS, "Win"),
	)
	orig := bytes.Clone(table)
	first := Decode(table)
	second := Decode(table, UnicodeDecoding())
	assert.Equal(t, orig, table)
	assert.Equal(t, first, second)
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add(nametest.Table(nametest.Microsoft(1, langEnglishUS, "DejaVu Sans")))
	f.Add(nametest.Table(nametest.Mac(2, "Italic"), nametest.Unicode(16, "Sans")))
	f.Add(nametest.Table(nametest.Microsoft(1, langEnglishUS, "X").WithSpan(0xffff, 0xffff)))
	f.Fuzz(func(t *testing.T, table []byte) {
		orig := bytes.Clone(table)
		_ = Decode(table)
		_ = Decode(table, UnicodeDecoding())
		_ = Validate(table)
		for rec := range Records(table) {
			_ = rec.Text(table)
		}
		if !bytes.Equal(orig, table) {
			t.Fatalf("input modified")
		}
	})
}
