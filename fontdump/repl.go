package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontnames"
	"github.com/npillmayer/fontnames/fontcatalog"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	catalog := loadCatalog(flags)
	repl, err := readline.New("fontnames > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, catalog: catalog, style: true}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	catalog *fontcatalog.Catalog
	style   bool // include style names
}

// REPL starts interactive mode.
//
// Every input line is taken as a font family name, except for a couple of
// commands:
//
//	:quit        leave the REPL
//	:style       toggle printing of style names
//	:where       print the location of the last family looked up
//	:help        list the commands
func (intp *Intp) REPL() {
	last := ""
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		switch line {
		case ":quit", ":q":
			pterm.Info.Println("Good bye!")
			return
		case ":style":
			intp.style = !intp.style
			pterm.Printf("style names %s\n", onOff(intp.style))
			continue
		case ":where":
			intp.where(last)
			continue
		case ":help":
			pterm.Println(":quit  :style  :where  :help  or a font family name")
			continue
		}
		last = line
		intp.lookup(line)
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) lookup(family string) {
	name := fontcatalog.EnglishName(intp.catalog, family, intp.style)
	switch {
	case name == "":
		pterm.Error.Printf("no English name for %q\n", family)
	case fontnames.IsLocalized(family):
		pterm.Printf("%s, %s\n", family, name)
	default:
		pterm.Println(name)
	}
}

func (intp *Intp) where(family string) {
	if family == "" {
		pterm.Error.Println("no font family looked up yet")
		return
	}
	path, index, err := intp.catalog.Location(family)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	fmt.Printf("%s [%d]\n", path, index)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
