package otname

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// Rank orders the candidates competing for a logical name.
type Rank uint8

const (
	RankNotFound Rank = iota
	RankApple
	RankUnicode
	RankMicrosoft
)

func (r Rank) String() string {
	switch r {
	case RankNotFound:
		return "NotFound"
	case RankApple:
		return "Apple"
	case RankUnicode:
		return "Unicode"
	case RankMicrosoft:
		return "Microsoft"
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Field is one of the logical names extracted by Decode.
type Field int

const (
	FieldFamily Field = iota
	FieldStyle
	FieldPreferredFamily
	FieldPreferredStyle
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldFamily:
		return "family"
	case FieldStyle:
		return "style"
	case FieldPreferredFamily:
		return "preferred family"
	case FieldPreferredStyle:
		return "preferred style"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// FieldForNameID maps a name ID to a logical name. Only name IDs 1, 2, 16
// and 17 are recognized.
func FieldForNameID(id sfnt.NameID) (Field, bool) {
	switch id {
	case sfnt.NameIDFamily:
		return FieldFamily, true
	case sfnt.NameIDSubfamily:
		return FieldStyle, true
	case sfnt.NameIDTypographicFamily:
		return FieldPreferredFamily, true
	case sfnt.NameIDTypographicSubfamily:
		return FieldPreferredStyle, true
	}
	return 0, false
}

// Primary language ID of English, i.e. the lower 10 bits of a Windows LCID.
const languageEnglish = 0x009

// Candidate is the record currently chosen for a logical name.
type Candidate struct {
	Rank   Rank
	Record Record
}

// Found is false for a field without any acceptable record.
func (c Candidate) Found() bool {
	return c.Rank != RankNotFound
}

// Selection holds one candidate per logical name. It is a value: Step
// returns an updated copy and never changes its receiver.
type Selection [fieldCount]Candidate

// Candidate returns the candidate for field f.
func (s Selection) Candidate(f Field) Candidate {
	if f < 0 || f >= fieldCount {
		return Candidate{}
	}
	return s[f]
}

// Step folds one name record into the selection. A record updates at most
// one field, and only if it outranks the current candidate:
//
// ▪︎ Microsoft (encodings 0 and 1) claims a field not yet held by a Microsoft
// record; English Microsoft records always take over. Hence the last
// English Microsoft record wins.
//
// ▪︎ Unicode (encodings 0–3) claims a field held by Apple or nobody.
//
// ▪︎ Macintosh (Roman, language 0) claims an empty field.
//
// Bounds of the record's string are not checked here; see Select.
func (s Selection) Step(rec Record) Selection {
	f, ok := FieldForNameID(rec.NameID)
	if !ok {
		return s
	}
	if rank, ok := outranks(s[f].Rank, rec); ok {
		s[f] = Candidate{Rank: rank, Record: rec}
	}
	return s
}

// Decodable reports whether Text is able to read the string of r:
// Microsoft encodings 0, 1 and 10, Unicode encodings 0 to 3, and Macintosh
// Roman. Other encodings (e.g., Mac Japanese) would come out garbled.
func (r Record) Decodable() bool {
	switch r.Platform {
	case PlatformMicrosoft:
		return r.Encoding == 0 || r.Encoding == 1 || r.Encoding == 10
	case PlatformUnicode:
		return r.Encoding < 4
	case PlatformMacintosh:
		return r.Encoding == 0
	}
	return false
}

// outranks returns the rank rec would hold, and whether it beats current.
func outranks(current Rank, rec Record) (Rank, bool) {
	if !rec.Decodable() {
		return current, false
	}
	switch {
	case rec.Platform == PlatformMicrosoft && (rec.Encoding == 0 || rec.Encoding == 1) &&
		(rec.Language&0x3ff == languageEnglish || current < RankMicrosoft):
		return RankMicrosoft, true
	case rec.Platform == PlatformUnicode && rec.Encoding < 4 && current < RankUnicode:
		// encoding 4 is full-repertoire UCS-4 territory; we do not read it
		return RankUnicode, true
	case rec.Platform == PlatformMacintosh && rec.Encoding == 0 && rec.Language == 0 && current < RankApple:
		return RankApple, true
	}
	return current, false
}

// Select runs the candidate selection over all records of table. Records
// with unknown name IDs or with strings exceeding the table are skipped.
// An invalid table results in an empty selection.
func Select(table []byte) Selection {
	h, err := ParseHeader(table)
	if err != nil {
		return Selection{}
	}
	return selectFrom(h, table)
}

func selectFrom(h Header, table []byte) Selection {
	var sel Selection
	for rec := range records(h, table) {
		if _, ok := FieldForNameID(rec.NameID); !ok {
			continue
		}
		if !rec.InBounds(table) {
			tracer().Debugf("skipping name record %v: string out of bounds", rec)
			continue
		}
		sel = sel.Step(rec)
	}
	return sel
}
