/*
Package nametest builds synthetic 'name' tables and font files for tests.

Real fonts carry a lot of baggage and are subject to licensing. Tests in this
module therefore construct exactly the name records they need:

	table := nametest.Table(
	    nametest.Microsoft(1, 0x409, "DejaVu Sans"),
	    nametest.Mac(2, "Italic"),
	)
*/
package nametest

import (
	"encoding/binary"
	"slices"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/text/encoding/unicode"
)

// Platform IDs as used in name records.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformMicrosoft = 3
)

// Entry is a name record together with its string data.
type Entry struct {
	Platform, Encoding, Language, NameID uint16
	Data                                 []byte
	// if set, Length and Offset override the values computed by Table
	Length, Offset *uint16
}

// UTF16 encodes s as UTF-16BE without byte order mark.
func UTF16(s string) []byte {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		panic(err) // only valid UTF-8 is used in tests
	}
	return b
}

// Microsoft creates a Windows Unicode BMP (encoding 1) entry.
func Microsoft(nameID, language uint16, s string) Entry {
	return Entry{
		Platform: PlatformMicrosoft,
		Encoding: 1,
		Language: language,
		NameID:   nameID,
		Data:     UTF16(s),
	}
}

// Unicode creates a Unicode platform entry with encoding 3 (BMP).
func Unicode(nameID uint16, s string) Entry {
	return Entry{
		Platform: PlatformUnicode,
		Encoding: 3,
		NameID:   nameID,
		Data:     UTF16(s),
	}
}

// Mac creates a Macintosh Roman, language English entry. Bytes of s are
// copied verbatim.
func Mac(nameID uint16, s string) Entry {
	return Entry{
		Platform: PlatformMacintosh,
		NameID:   nameID,
		Data:     []byte(s),
	}
}

// WithSpan overrides length and offset of e's string.
func (e Entry) WithSpan(length, offset uint16) Entry {
	e.Length, e.Offset = &length, &offset
	return e
}

// Table builds a format 0 'name' table. Strings are stored in the order of
// the entries, directly after the record directory.
func Table(entries ...Entry) []byte {
	storage := 6 + 12*len(entries)
	header := make([]byte, storage)
	binary.BigEndian.PutUint16(header[0:], 0)
	binary.BigEndian.PutUint16(header[2:], uint16(len(entries)))
	binary.BigEndian.PutUint16(header[4:], uint16(storage))
	var strs []byte
	for i, e := range entries {
		length, offset := uint16(len(e.Data)), uint16(len(strs))
		if e.Length != nil {
			length = *e.Length
		}
		if e.Offset != nil {
			offset = *e.Offset
		}
		rec := header[6+12*i:]
		binary.BigEndian.PutUint16(rec[0:], e.Platform)
		binary.BigEndian.PutUint16(rec[2:], e.Encoding)
		binary.BigEndian.PutUint16(rec[4:], e.Language)
		binary.BigEndian.PutUint16(rec[6:], e.NameID)
		binary.BigEndian.PutUint16(rec[8:], length)
		binary.BigEndian.PutUint16(rec[10:], offset)
		strs = append(strs, e.Data...)
	}
	return append(header, strs...)
}

// Font wraps tables into a TrueType font file. Keys are table tags,
// e.g. "name". The font is not usable for rendering.
func Font(tables map[string][]byte) []byte {
	list := make([]opentype.Table, 0, len(tables))
	for tag, content := range tables {
		list = append(list, opentype.Table{
			Tag:     opentype.MustNewTag(tag),
			Content: slices.Clip(content),
		})
	}
	slices.SortFunc(list, func(a, b opentype.Table) int {
		switch {
		case a.Tag < b.Tag:
			return -1
		case a.Tag > b.Tag:
			return 1
		}
		return 0
	})
	return opentype.WriteTTF(list)
}

// FontWithName is a shortcut for a font file holding a single 'name' table.
func FontWithName(entries ...Entry) []byte {
	return Font(map[string][]byte{
		"name": Table(entries...),
		"head": make([]byte, 54),
	})
}

// Collection concatenates fonts into a TrueType collection ('ttcf').
func Collection(fonts ...[]byte) []byte {
	headerSize := 12 + 4*len(fonts)
	out := make([]byte, headerSize)
	copy(out, "ttcf")
	binary.BigEndian.PutUint32(out[4:], 0x00010000)
	binary.BigEndian.PutUint32(out[8:], uint32(len(fonts)))
	for i, f := range fonts {
		base := uint32(len(out))
		binary.BigEndian.PutUint32(out[12+4*i:], base)
		out = append(out, relocate(f, base)...)
	}
	return out
}

// relocate shifts the table offsets of a single font by base, as offsets in
// a collection are relative to the start of the file.
func relocate(font []byte, base uint32) []byte {
	f := slices.Clone(font)
	n := int(binary.BigEndian.Uint16(f[4:6]))
	for i := range n {
		entry := f[12+16*i:]
		off := binary.BigEndian.Uint32(entry[8:12])
		binary.BigEndian.PutUint32(entry[8:12], off+base)
	}
	return f
}
