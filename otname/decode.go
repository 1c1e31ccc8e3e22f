package otname

// Names are the names decoded from a 'name' table. A name not present
// in the table is empty.
type Names struct {
	Family          string // e.g. "DejaVu Sans Condensed"
	Style           string // e.g. "Italic"
	PreferredFamily string // e.g. "DejaVu Sans"
	PreferredStyle  string // e.g. "Condensed Italic"
}

// IsEmpty is true if none of the names has been found.
func (n Names) IsEmpty() bool {
	return n == Names{}
}

// Get returns the name for field f.
func (n Names) Get(f Field) string {
	switch f {
	case FieldFamily:
		return n.Family
	case FieldStyle:
		return n.Style
	case FieldPreferredFamily:
		return n.PreferredFamily
	case FieldPreferredStyle:
		return n.PreferredStyle
	}
	return ""
}

func (n *Names) set(f Field, s string) {
	switch f {
	case FieldFamily:
		n.Family = s
	case FieldStyle:
		n.Style = s
	case FieldPreferredFamily:
		n.PreferredFamily = s
	case FieldPreferredStyle:
		n.PreferredStyle = s
	}
}

// Decode extracts family, style, preferred family and preferred style from
// the raw bytes of a 'name' table.
//
// Decode accepts any input. Tables with an invalid header (too short, format
// other than 0, record directory overlapping the string storage) yield
// empty Names. Records pointing outside of table are ignored.
// A table of length 0 is the usual way to say "font has no 'name' table".
//
// Strings are decoded with LegacyDecoding, unless UnicodeDecoding is given.
// table is never modified.
func Decode(table []byte, opts ...DecodeOption) Names {
	var names Names
	h, err := ParseHeader(table)
	if err != nil {
		tracer().Debugf("ignoring name table: %v", err)
		return names
	}
	sel := selectFrom(h, table)
	for f := range fieldCount {
		c := sel[f]
		if !c.Found() {
			continue
		}
		names.set(f, c.Record.Text(table, opts...))
	}
	return names
}
