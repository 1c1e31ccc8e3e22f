package fontcatalog

import (
	"iter"
	"strings"

	"github.com/npillmayer/fontnames"
)

// Alias is a face name as enumerated, paired with its English name.
type Alias struct {
	Face    string // name the font is listed under
	English string // English name, set for localized face names only
}

// Populate visits every face name of faces and computes the English alias
// of localized names, using r to acquire name tables.
//
// Empty names, vertical-writing variants ("@family", which duplicate
// "family") and "WST_" fonts are skipped without being visited. So are
// localized names for which no English name can be found.
// Visiting stops early if visit returns false.
//
// Populate returns the number of faces seen, skipped ones included.
func Populate(r Resolver, faces iter.Seq[string], visit func(Alias) bool) int {
	total := 0
	for face := range faces {
		total++
		if skipFace(face) {
			tracer().Debugf("skipping face %q", face)
			continue
		}
		alias := Alias{Face: face}
		if fontnames.IsLocalized(face) {
			if alias.English = EnglishName(r, face, false); alias.English == "" {
				tracer().Debugf("no English name for localized face %q", face)
				continue
			}
		}
		if !visit(alias) {
			break
		}
	}
	return total
}

func skipFace(name string) bool {
	return name == "" || strings.HasPrefix(name, "@") || strings.HasPrefix(name, "WST_")
}
