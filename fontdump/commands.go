package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontnames"
	"github.com/npillmayer/fontnames/fontcatalog"
	"github.com/npillmayer/fontnames/internal/fontload"
	"github.com/npillmayer/fontnames/otname"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runListCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	catalog := loadCatalog(flags)
	total := fontcatalog.Populate(catalog, catalog.Faces(), func(a fontcatalog.Alias) bool {
		if a.English == "" {
			pterm.Println(a.Face)
		} else {
			pterm.Printf("%s, %s\n", a.Face, a.English)
		}
		return true
	})
	pterm.Info.Printf("%d font families\n", total)
}

func runEnglishCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	family := strings.TrimSpace(args["family"].Value)
	if family == "" {
		fatalf("font family is required")
	}
	catalog := loadCatalog(flags)
	name := fontcatalog.EnglishName(catalog, family, mustFlagBool(flags["style"], "style"))
	if name == "" {
		fatalf("no English name for font family %q", family)
	}
	pterm.Println(name)
}

func runNamesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	var opts []otname.DecodeOption
	if mustFlagBool(flags["unicode"], "unicode") {
		opts = append(opts, otname.UnicodeDecoding())
	}
	faces, err := fontload.LoadFaces(fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	showRecords := mustFlagBool(flags["records"], "records")
	showIssues := mustFlagBool(flags["errors"], "errors")
	for _, face := range faces {
		fmt.Printf("Face %d (%s)\n", face.Index, face.Type)
		if face.NameTable == nil {
			pterm.Error.Println("no 'name' table")
			continue
		}
		printNames(otname.Decode(face.NameTable, opts...))
		if showRecords {
			printRecords(face.NameTable, opts)
		}
		if showIssues {
			issues := otname.Validate(face.NameTable)
			fmt.Printf("Issues: %d\n", len(issues))
			for _, e := range issues {
				fmt.Printf("error: %s\n", e.Error())
			}
		}
	}
}

func printNames(names otname.Names) {
	if names.IsEmpty() {
		fmt.Println("  no usable names")
		return
	}
	for _, f := range []otname.Field{otname.FieldFamily, otname.FieldStyle,
		otname.FieldPreferredFamily, otname.FieldPreferredStyle} {
		if s := names.Get(f); s != "" {
			fmt.Printf("  %-16s %s\n", f.String()+":", s)
		}
	}
	if english := fontnames.EnglishName(names, true); english != "" {
		fmt.Printf("  %-16s %s\n", "full name:", english)
	}
}

// printRecords prints the record directory as a table. Records of
// name IDs not decoded by otname are listed as well.
func printRecords(table []byte, opts []otname.DecodeOption) {
	data := [][]string{{"#", "Platform", "Enc", "Lang", "Name", "Len", "Off", "Text"}}
	for rec := range otname.Records(table) {
		text := "<out of bounds>"
		if rec.InBounds(table) {
			text = rec.Text(table, opts...)
		}
		data = append(data, []string{
			strconv.Itoa(rec.Index),
			rec.Platform.String(),
			strconv.Itoa(int(rec.Encoding)),
			fmt.Sprintf("%#04x", rec.Language),
			strconv.Itoa(int(rec.NameID)),
			strconv.Itoa(int(rec.Length)),
			strconv.Itoa(int(rec.Offset)),
			text,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot render record table: %v", err)
	}
}
