package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontnames/fontcatalog"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontnames.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontnames.cli")
}

// unset marks string flags which have not been given
const unset = "-"

func main() {
	initDisplay()

	commando.
		SetExecutableName("fontdump").
		SetVersion("v0.1.0").
		SetDescription("List installed fonts and the English names of localized fonts.")

	withCommonFlags(commando.
		Register("list").
		SetDescription("Enumerate installed font families, with English aliases for localized names.").
		SetShortDescription("list font families")).
		SetAction(runListCommand)

	withCommonFlags(commando.
		Register("names").
		SetDescription("Decode the 'name' table of every face in a font file.").
		SetShortDescription("decode font names").
		AddArgument("font", "font file path (TTF, OTF, TTC, WOFF)", "").
		AddFlag("unicode,u", "decode surrogate pairs and Mac Roman properly", commando.Bool, nil).
		AddFlag("records,r", "print the name record directory", commando.Bool, nil).
		AddFlag("errors,e", "print structural issues of the 'name' table", commando.Bool, nil)).
		SetAction(runNamesCommand)

	withCommonFlags(commando.
		Register("english").
		SetDescription("Print the English name of an installed font family.").
		SetShortDescription("English font name").
		AddArgument("family", "font family name, possibly localized", "").
		AddFlag("style,s", "append the style name", commando.Bool, nil)).
		SetAction(runEnglishCommand)

	withCommonFlags(commando.
		Register("repl").
		SetDescription("Interactively look up English names of font families.").
		SetShortDescription("interactive lookup")).
		SetAction(runReplCommand)

	commando.Parse(nil)
}

func withCommonFlags(cmd *commando.Command) *commando.Command {
	return cmd.
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		AddFlag("dirs,d", "additional font directories, separated by the OS path list separator", commando.String, unset).
		AddFlag("no-system,n", "do not scan the system font directories", commando.Bool, nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing routes all tracers of this module to Go's log package.
func setupTracing(flags map[string]commando.FlagValue) {
	level := mustFlagString(flags["trace"], "trace")
	switch strings.ToLower(level) {
	case "debug":
		level = "Debug"
	case "info":
		level = "Info"
	case "error":
		level = "Error"
	default:
		fatalf("invalid trace level: %s", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fontnames":          level,
		"trace.fontnames.otname":   level,
		"trace.fontnames.fontload": level,
		"trace.fontnames.catalog":  level,
		"trace.fontnames.cli":      level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("trace level is %s", level)
}

// loadCatalog creates and loads a font catalog, configured from the
// command line flags.
func loadCatalog(flags map[string]commando.FlagValue) *fontcatalog.Catalog {
	conf := testconfig.Conf{}
	if dirs := mustFlagString(flags["dirs"], "dirs"); dirs != unset {
		conf[fontcatalog.KeyFontDirs] = dirs
	}
	if mustFlagBool(flags["no-system"], "no-system") {
		conf[fontcatalog.KeySkipSystem] = true
	}
	catalog := fontcatalog.New(conf)
	spinner, _ := pterm.DefaultSpinner.Start("scanning fonts")
	err := catalog.Load(context.Background())
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		fatalf("cannot load font catalog: %v", err)
	}
	return catalog
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "fontdump: "+format+"\n", args...)
	os.Exit(1)
}
