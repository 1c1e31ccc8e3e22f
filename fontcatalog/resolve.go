package fontcatalog

import (
	"errors"

	"github.com/npillmayer/fontnames"
	"github.com/npillmayer/fontnames/otname"
)

// ErrFontUnavailable is returned by resolvers which do not know a font.
var ErrFontUnavailable = errors.New("font unavailable")

// Resolver acquires the 'name' table of a font, given a font family name.
type Resolver interface {
	NameTable(family string) ([]byte, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(family string) ([]byte, error)

// NameTable calls f(family).
func (f ResolverFunc) NameTable(family string) ([]byte, error) {
	return f(family)
}

// EnglishName resolves a font family and returns its English name, optionally
// followed by the style. If the font cannot be resolved, the result is empty,
// just as for a font without a usable 'name' table.
func EnglishName(r Resolver, family string, includeStyle bool) string {
	table, err := r.NameTable(family)
	if err != nil {
		tracer().Debugf("cannot resolve %q: %v", family, err)
		table = nil
	}
	return fontnames.EnglishName(otname.Decode(table), includeStyle)
}
