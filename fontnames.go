/*
Package fontnames finds the canonical names of installed fonts.

Fonts name themselves in their 'name' table, usually several times: once
per platform (Unicode, Macintosh, Windows) and often once per language. A font
installed on a Chinese system will be listed by its localized name, while
documents and style sheets refer to it by its English name. This module
decodes the 'name' table (package otname), enumerates the fonts installed on
a system (package fontcatalog), and registers English aliases for localized
font names.

There is a certain confusion with the nomenclature of font names. We will
stick to the following definitions:

▪︎ The "family" is what a font is commonly called, e.g. "DejaVu Sans Condensed".
Older fonts tend to fold width and weight into the family.

▪︎ The "style" distinguishes members of a family, e.g. "Italic".

▪︎ The "preferred family" and "preferred style" are the typographic names
introduced by OpenType, e.g. "DejaVu Sans" and "Condensed Italic".

# Links

OpenType 'name' table:
https://learn.microsoft.com/en-us/typography/opentype/spec/name

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontnames

import (
	"github.com/npillmayer/fontnames/internal/fontload"
	"github.com/npillmayer/fontnames/otname"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontnames'
func tracer() tracing.Trace {
	return tracing.Select("fontnames")
}

// EnglishName composes the name a font is registered under as an alias.
// It is the family name, followed by a single space and the style if
// includeStyle is set. A font without a family name has no English name.
func EnglishName(names otname.Names, includeStyle bool) string {
	if names.Family == "" {
		return ""
	}
	if includeStyle {
		return names.Family + " " + names.Style
	}
	return names.Family
}

// IsLocalized is a predicate: does a font name contain characters beyond
// Latin-1? Such names are typically localized names of fonts, for which an
// English alias is worth registering.
func IsLocalized(name string) bool {
	for _, r := range name {
		if r >= 0x100 {
			return true
		}
	}
	return false
}

// DecodeFile decodes the names of every face in a font file. Faces without
// a 'name' table are reported with empty names.
func DecodeFile(path string, opts ...otname.DecodeOption) ([]otname.Names, error) {
	faces, err := fontload.LoadFaces(path)
	if err != nil {
		return nil, err
	}
	names := make([]otname.Names, len(faces))
	for i, face := range faces {
		names[i] = otname.Decode(face.NameTable, opts...)
		tracer().Debugf("%s #%d: family=%q style=%q", path, i, names[i].Family, names[i].Style)
	}
	return names, nil
}
