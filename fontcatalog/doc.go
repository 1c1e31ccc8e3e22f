/*
Package fontcatalog knows about the fonts installed on a system.

A Catalog scans the platform's font directories (as found by
github.com/flopp/go-findfont) and any number of additional directories,
and indexes every face by all the family names it carries, in all languages.
It then acts as a Resolver: given a font family name, it hands out the raw
bytes of the font's 'name' table.

Configuration keys (see schuko.Configuration):

	fonts.dirs         additional font directories, separated by os.PathListSeparator
	fonts.skip-system  do not scan the system font directories

Populate walks a list of font face names and computes English aliases for
localized names, the way font databases of GUI toolkits register them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontcatalog

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontnames.catalog'
func tracer() tracing.Trace {
	return tracing.Select("fontnames.catalog")
}
