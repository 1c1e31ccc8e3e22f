/*
Package fontload reads font files and hands out the raw bytes of their
'name' tables, one per face.

It supports everything the go-text font loader understands: TrueType and
OpenType files, TrueType collections (*.ttc), WOFF and dfont.
*/
package fontload

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontnames.fontload'
func tracer() tracing.Trace {
	return tracing.Select("fontnames.fontload")
}

// NameTag is the tag of the OpenType 'name' table, 0x6e616d65.
var NameTag = opentype.MustNewTag("name")

// ErrNoFaces is returned for font files without any usable face.
var ErrNoFaces = errors.New("font file contains no faces")

// Face is a single font within a font file.
type Face struct {
	Path      string // file path, empty for fonts loaded from memory
	Index     int    // position within a collection, 0 for single fonts
	Type      string // outline flavour, e.g. "TrueType" or "OpenType"
	NameTable []byte // raw 'name' table, nil if the font has none
}

// LoadFaces loads all faces contained in a font file.
func LoadFaces(path string) ([]Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	faces, err := ParseFaces(data)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", path, err)
	}
	for i := range faces {
		faces[i].Path = path
	}
	tracer().Debugf("loaded %d face(s) from %s", len(faces), path)
	return faces, nil
}

// ParseFaces extracts the faces of a font file held in memory.
// A face lacking a 'name' table is still returned, with NameTable
// being nil.
func ParseFaces(data []byte) ([]Face, error) {
	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(loaders) == 0 {
		return nil, ErrNoFaces
	}
	faces := make([]Face, 0, len(loaders))
	for i, ld := range loaders {
		face := Face{Index: i, Type: outlineType(ld.Type)}
		if ld.HasTable(NameTag) {
			if face.NameTable, err = ld.RawTable(NameTag); err != nil {
				// a broken table directory entry: treat like a missing table
				tracer().Infof("face #%d: cannot read 'name' table: %v", i, err)
				face.NameTable = nil
			}
		}
		faces = append(faces, face)
	}
	return faces, nil
}

func outlineType(t opentype.Tag) string {
	switch t {
	case opentype.TrueType, opentype.AppleTrueType:
		return "TrueType"
	case opentype.OpenType:
		return "OpenType"
	case opentype.PostScript1:
		return "PostScript"
	}
	return t.String()
}
