package otname

import "fmt"

// TableError describes a problem with the structure of a 'name' table.
//
// Decode never reports errors; TableErrors are produced by ParseHeader and
// Validate for clients wanting to know why a name came out empty.
type TableError struct {
	Section string // "Header" or "Record"
	Record  int    // index of the offending name record, -1 for the header
	Issue   string // human-readable description of the issue
	Offset  int    // byte offset within the table (0 if unknown)
}

// Error implements the error interface.
func (e *TableError) Error() string {
	where := e.Section
	if e.Record >= 0 {
		where = fmt.Sprintf("%s #%d", e.Section, e.Record)
	}
	if e.Offset > 0 {
		return fmt.Sprintf("name/%s at offset %d: %s", where, e.Offset, e.Issue)
	}
	return fmt.Sprintf("name/%s: %s", where, e.Issue)
}

// Validate lists the structural issues of table. An invalid header results
// in exactly one error. Otherwise there is one error for every record whose
// string exceeds the table, and one for every UTF-16 string of odd length.
// Records with unknown name IDs or platforms are not considered an issue.
//
// A nil result means the table is clean.
func Validate(table []byte) []TableError {
	h, err := ParseHeader(table)
	if err != nil {
		return []TableError{*err.(*TableError)}
	}
	var errs []TableError
	for rec := range records(h, table) {
		at := nameHeaderSize + rec.Index*nameRecordSize
		if !rec.InBounds(table) {
			start, end := rec.span()
			errs = append(errs, TableError{
				Section: "Record",
				Record:  rec.Index,
				Issue:   fmt.Sprintf("string [%d:%d] exceeds table size %d", start, end, len(table)),
				Offset:  at,
			})
			continue
		}
		isUTF16 := rec.Platform == PlatformMicrosoft || rec.Platform == PlatformUnicode
		if isUTF16 && rec.Length%2 != 0 {
			errs = append(errs, TableError{
				Section: "Record",
				Record:  rec.Index,
				Issue:   fmt.Sprintf("odd length %d of UTF-16 string", rec.Length),
				Offset:  at,
			})
		}
	}
	return errs
}
