package fontcatalog

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontnames/internal/fontload"
	"github.com/npillmayer/fontnames/otname"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
)

// Configuration keys.
const (
	KeyFontDirs   = "fonts.dirs"
	KeySkipSystem = "fonts.skip-system"
)

// Catalog is an index of installed font faces, keyed by family name.
// It is safe for concurrent use.
//
// The zero value is not usable; create catalogs with New.
type Catalog struct {
	conf   schuko.Configuration
	system func() []string // lists system font files

	scanMx sync.Mutex // serializes directory scans
	mx     sync.RWMutex
	loaded bool
	index  map[string]face // lower-case family name -> face
	names  []string        // registered family names, sorted
}

type face struct {
	name  string // family name as found in the font
	path  string
	index int // within a collection
	table []byte
}

// New creates a catalog. conf may be nil, in which case system font
// directories are scanned and nothing else.
// The catalog will be empty until Load is called.
func New(conf schuko.Configuration) *Catalog {
	if conf == nil {
		conf = testconfig.Conf{}
	}
	return &Catalog{
		conf:   conf,
		system: findfont.List,
		index:  make(map[string]face),
	}
}

// Load scans the font directories, once. Subsequent calls return
// immediately, concurrent first calls wait for a single scan to finish.
// Use Reload to re-scan.
func (c *Catalog) Load(ctx context.Context) error {
	c.mx.RLock()
	loaded := c.loaded
	c.mx.RUnlock()
	if loaded {
		return nil
	}
	c.scanMx.Lock()
	defer c.scanMx.Unlock()
	c.mx.RLock()
	loaded = c.loaded
	c.mx.RUnlock()
	if loaded { // another caller did the scan while we were waiting
		return nil
	}
	return c.scan(ctx)
}

// Reload scans the font directories and replaces the catalog's content.
// Scanning is cancelled between font files if ctx is done; the catalog
// is left unchanged in that case.
func (c *Catalog) Reload(ctx context.Context) error {
	c.scanMx.Lock()
	defer c.scanMx.Unlock()
	return c.scan(ctx)
}

// scan does the work for Load and Reload. The caller holds scanMx.
func (c *Catalog) scan(ctx context.Context) error {
	index := make(map[string]face)
	var names []string
	for _, path := range c.fontFiles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		faces, err := fontload.LoadFaces(path)
		if err != nil {
			tracer().Infof("skipping font file: %v", err)
			continue
		}
		for _, f := range faces {
			names = register(index, names, f)
		}
	}
	slices.Sort(names)
	c.mx.Lock()
	defer c.mx.Unlock()
	c.index, c.names, c.loaded = index, names, true
	tracer().Infof("font catalog holds %d family names", len(names))
	return nil
}

// register adds a face to index under every family name it carries
// (name IDs 1 and 16, all languages), as long as the record's encoding is
// one we can decode. The first face to claim a name keeps it.
func register(index map[string]face, names []string, f fontload.Face) []string {
	for rec := range otname.Records(f.NameTable) {
		field, ok := otname.FieldForNameID(rec.NameID)
		if !ok || (field != otname.FieldFamily && field != otname.FieldPreferredFamily) {
			continue
		}
		if !rec.Decodable() {
			tracer().Debugf("%s: not indexing name record %v", f.Path, rec)
			continue
		}
		name := strings.TrimSpace(rec.Text(f.NameTable))
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = face{name: name, path: f.Path, index: f.Index, table: f.NameTable}
		names = append(names, name)
	}
	return names
}

// fontFiles lists the font files to scan, sorted and without duplicates.
func (c *Catalog) fontFiles() []string {
	var files []string
	if !c.conf.GetBool(KeySkipSystem) {
		files = append(files, c.system()...)
	}
	for _, dir := range filepath.SplitList(c.conf.GetString(KeyFontDirs)) {
		if dir = strings.TrimSpace(dir); dir == "" {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				tracer().Infof("font directory: %v", err)
				return nil
			}
			if !d.IsDir() && isFontFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			tracer().Errorf("cannot scan font directory %s: %v", dir, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files)
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc", ".woff", ".dfont":
		return true
	}
	return false
}

// Families returns the family names of all faces in the catalog, sorted.
// A font usually contributes several names, e.g. its localized and its
// English name.
func (c *Catalog) Families() []string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return slices.Clone(c.names)
}

// Faces iterates over the family names of the catalog, like Families.
func (c *Catalog) Faces() iter.Seq[string] {
	return slices.Values(c.Families())
}

// NameTable returns a copy of the 'name' table of the font registered
// under family. Family names are matched case-insensitively.
// If the catalog has not yet been loaded, it will be.
//
// NameTable implements Resolver.
func (c *Catalog) NameTable(family string) ([]byte, error) {
	if err := c.Load(context.Background()); err != nil {
		return nil, err
	}
	c.mx.RLock()
	defer c.mx.RUnlock()
	f, ok := c.index[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontUnavailable, family)
	}
	tracer().Debugf("resolved %q to %s #%d", family, f.path, f.index)
	return bytes.Clone(f.table), nil
}

// Location returns the font file and the index within a collection of the
// face registered under family.
func (c *Catalog) Location(family string) (path string, index int, err error) {
	if err = c.Load(context.Background()); err != nil {
		return
	}
	c.mx.RLock()
	defer c.mx.RUnlock()
	f, ok := c.index[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrFontUnavailable, family)
	}
	return f.path, f.index, nil
}

var _ Resolver = (*Catalog)(nil)
