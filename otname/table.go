package otname

import (
	"fmt"
	"iter"

	"golang.org/x/image/font/sfnt"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
	minTableSize   = 8 // header plus the start of the record directory
)

// PlatformID identifies the encoding convention of a name record.
type PlatformID uint16

const (
	PlatformUnicode   PlatformID = 0
	PlatformMacintosh PlatformID = 1
	PlatformMicrosoft PlatformID = 3
)

func (p PlatformID) String() string {
	switch p {
	case PlatformUnicode:
		return "Unicode"
	case PlatformMacintosh:
		return "Macintosh"
	case PlatformMicrosoft:
		return "Microsoft"
	}
	return fmt.Sprintf("Platform(%d)", uint16(p))
}

// Header is the fixed part at the start of table 'name'.
type Header struct {
	Format       uint16 // only format 0 is recognized
	Count        uint16 // number of name records
	StringOffset uint16 // start of string storage, relative to start of table
}

func (h Header) recordsEnd() int {
	return nameHeaderSize + int(h.Count)*nameRecordSize
}

// ParseHeader reads and validates the header of a 'name' table.
// If the table cannot be used, a *TableError is returned. A header returned
// without an error guarantees that the record directory lies completely
// inside table and ends before the string storage.
func ParseHeader(table []byte) (Header, error) {
	if len(table) < minTableSize {
		return Header{}, &TableError{
			Section: "Header",
			Record:  -1,
			Issue:   fmt.Sprintf("table too short: %d bytes", len(table)),
		}
	}
	h := Header{
		Format:       u16(table[0:2]),
		Count:        u16(table[2:4]),
		StringOffset: u16(table[4:6]),
	}
	if h.Format != 0 {
		return h, &TableError{
			Section: "Header",
			Record:  -1,
			Issue:   fmt.Sprintf("unsupported format %d", h.Format),
		}
	}
	if int(h.StringOffset) >= len(table) {
		return h, &TableError{
			Section: "Header",
			Record:  -1,
			Issue:   fmt.Sprintf("string storage offset %d beyond table size %d", h.StringOffset, len(table)),
			Offset:  4,
		}
	}
	if h.recordsEnd() > int(h.StringOffset) {
		return h, &TableError{
			Section: "Header",
			Record:  -1,
			Issue: fmt.Sprintf("record directory of %d entries overlaps string storage at %d",
				h.Count, h.StringOffset),
			Offset: nameHeaderSize,
		}
	}
	return h, nil
}

// Record is a name record, i.e. one entry of the record directory.
type Record struct {
	Index    int // position in the record directory
	Platform PlatformID
	Encoding uint16
	Language uint16
	NameID   sfnt.NameID
	Length   uint16 // string length in bytes
	Offset   uint16 // string offset, relative to string storage
	storage  int    // start of string storage
}

// recordAt decodes directory entry i. The caller has to make sure that
// the entry is inside the record directory, see ParseHeader.
func recordAt(h Header, table []byte, i int) Record {
	b := table[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
	return Record{
		Index:    i,
		Platform: PlatformID(u16(b[0:2])),
		Encoding: u16(b[2:4]),
		Language: u16(b[4:6]),
		NameID:   sfnt.NameID(u16(b[6:8])),
		Length:   u16(b[8:10]),
		Offset:   u16(b[10:12]),
		storage:  int(h.StringOffset),
	}
}

func (r Record) span() (start, end int) {
	start = r.storage + int(r.Offset)
	return start, start + int(r.Length)
}

// InBounds reports whether the string of r lies completely inside table.
func (r Record) InBounds(table []byte) bool {
	_, end := r.span()
	return end <= len(table)
}

// Bytes returns the raw string bytes of r, or nil if they are out of bounds.
// The result aliases table and has its capacity clipped.
func (r Record) Bytes(table []byte) []byte {
	if !r.InBounds(table) {
		return nil
	}
	start, end := r.span()
	return table[start:end:end]
}

// Text decodes the string of r. Records of platforms Unicode and Microsoft
// are read as UTF-16BE, everything else as a single-byte encoding.
// Out-of-bounds strings decode to "".
func (r Record) Text(table []byte, opts ...DecodeOption) string {
	b := r.Bytes(table)
	if len(b) == 0 {
		return ""
	}
	cfg := newDecodeConfig(opts)
	if r.Platform == PlatformMicrosoft || r.Platform == PlatformUnicode {
		return cfg.utf16(b)
	}
	return cfg.singleByte(b)
}

func (r Record) String() string {
	return fmt.Sprintf("#%d[%s enc=%d lang=%#x name=%d len=%d off=%d]",
		r.Index, r.Platform, r.Encoding, r.Language, r.NameID, r.Length, r.Offset)
}

// Records yields every entry of the record directory of table, in
// directory order, whether its string is in bounds or not. If the table
// header is invalid, nothing is yielded.
func Records(table []byte) iter.Seq[Record] {
	h, err := ParseHeader(table)
	if err != nil {
		return func(func(Record) bool) {}
	}
	return records(h, table)
}

func records(h Header, table []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for i := range int(h.Count) {
			if !yield(recordAt(h, table, i)) {
				return
			}
		}
	}
}
