/*
Package otname decodes the OpenType/TrueType 'name' table.

Fonts store their human readable names as a directory of name records, each
tagged with a platform, an encoding, a language and a name ID. The same
logical name (e.g., the family name) is usually present several times, once
per platform and often once per language. Package otname picks one candidate
per logical name and materializes it as a Go string:

▪︎ Family (name ID 1), e.g. "DejaVu Sans Condensed"

▪︎ Style (name ID 2), e.g. "Italic"

▪︎ Preferred family (name ID 16), e.g. "DejaVu Sans"

▪︎ Preferred style (name ID 17), e.g. "Condensed Italic"

Microsoft records win over Unicode records, which win over Macintosh records.
Among Microsoft records, English (language ID 0x?09) entries are preferred.

[Decode] is a total function: any byte slice, including nil and adversarial
input, yields a value. Structurally broken tables yield empty names; broken
records are skipped. Clients interested in what went wrong may call [Validate].

# Links

OpenType 'name' table:
https://learn.microsoft.com/en-us/typography/opentype/spec/name

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otname

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontnames.otname'
func tracer() tracing.Trace {
	return tracing.Select("fontnames.otname")
}
