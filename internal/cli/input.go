// Package cli drives a search session from line input, for debugging the
// engine without a client.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bastiangx/dinesearch/internal/logger"
	"github.com/bastiangx/dinesearch/pkg/feed"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/bastiangx/dinesearch/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const helpText = `commands:
  <text>            set the search query
  :clear            clear the query
  :tag <tag>        toggle a tag (also #<tag>)
  :facet <name>     browse all, cuisine or location tags
  :pick <n>         pick suggestion n
  :tags             list browsable tags
  :feed             show the home feed
  :reset            start over
  :help             show this help
  :quit             exit`

// Options control what the handler prints.
type Options struct {
	ShowDescriptions bool
	Color            bool
}

// InputHandler reads commands line by line, applies them to a session and
// prints the resulting state.
type InputHandler struct {
	session  *session.Session
	sections []feed.Section
	opts     Options

	in     io.Reader
	prompt io.Writer
	out    *log.Logger

	nameStyle lipgloss.Style
	tagStyle  lipgloss.Style
	dimStyle  lipgloss.Style
}

// NewInputHandler creates a handler reading from in and printing to out.
func NewInputHandler(sess *session.Session, sections []feed.Section, opts Options, in io.Reader, out io.Writer) *InputHandler {
	h := &InputHandler{
		session:  sess,
		sections: sections,
		opts:     opts,
		in:       in,
		prompt:   out,
		out:      logger.NewWithConfig(out, "", log.InfoLevel, false, false, log.TextFormatter),
	}
	if opts.Color {
		h.nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
		h.tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6200ee"))
		h.dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}
	return h
}

// Start runs the loop until :quit or the end of input.
func (h *InputHandler) Start() error {
	h.out.Print("dinesearch CLI [BETA]")
	h.out.Print("type to search, :help for commands")

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.prompt, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		cmd := parseCommand(scanner.Text())
		if cmd.name == cmdQuit {
			return nil
		}
		h.handle(cmd)
	}
}

type commandName int

const (
	cmdNone commandName = iota
	cmdQuery
	cmdClear
	cmdTag
	cmdFacet
	cmdPick
	cmdTags
	cmdFeed
	cmdReset
	cmdHelp
	cmdQuit
	cmdUnknown
)

type command struct {
	name commandName
	arg  string
}

// parseCommand maps one input line to a command. Plain text is a query and
// is kept as typed, surrounding spaces included.
func parseCommand(raw string) command {
	line := strings.TrimSpace(raw)
	if line == "" {
		return command{name: cmdNone}
	}
	if tag, ok := strings.CutPrefix(line, "#"); ok {
		return command{name: cmdTag, arg: strings.TrimSpace(tag)}
	}
	if !strings.HasPrefix(line, ":") {
		return command{name: cmdQuery, arg: raw}
	}

	word, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	switch word {
	case "clear":
		return command{name: cmdClear}
	case "tag", "t":
		return command{name: cmdTag, arg: arg}
	case "facet", "f":
		return command{name: cmdFacet, arg: arg}
	case "pick", "p":
		return command{name: cmdPick, arg: arg}
	case "tags":
		return command{name: cmdTags}
	case "feed":
		return command{name: cmdFeed}
	case "reset":
		return command{name: cmdReset}
	case "help", "h", "?":
		return command{name: cmdHelp}
	case "quit", "q", "exit":
		return command{name: cmdQuit}
	}
	return command{name: cmdUnknown, arg: word}
}

func (h *InputHandler) handle(cmd command) {
	switch cmd.name {
	case cmdNone:
		return
	case cmdQuery:
		h.session.EditQuery(cmd.arg)
	case cmdClear:
		h.session.EditQuery("")
	case cmdTag:
		if cmd.arg == "" {
			h.out.Error("Usage: :tag <tag>")
			return
		}
		h.session.ToggleTag(cmd.arg)
	case cmdFacet:
		f, err := index.ParseFacet(cmd.arg)
		if err != nil {
			h.out.Errorf("Facet: %v", err)
			return
		}
		h.session.SetFacet(f)
		h.printTags()
		return
	case cmdPick:
		if !h.pick(cmd.arg) {
			return
		}
	case cmdTags:
		h.printTags()
		return
	case cmdFeed:
		h.printFeed()
		return
	case cmdReset:
		h.session.Reset()
	case cmdHelp:
		h.out.Print(helpText)
		return
	case cmdUnknown:
		h.out.Errorf("Unknown command :%s (try :help)", cmd.arg)
		return
	}
	h.printState()
}

func (h *InputHandler) pick(arg string) bool {
	n, err := strconv.Atoi(arg)
	suggestions := h.session.Suggestions()
	if err != nil || n < 1 || n > len(suggestions) {
		h.out.Errorf("No suggestion %q (have %d)", arg, len(suggestions))
		return false
	}
	h.session.Select(suggestions[n-1])
	return true
}

func (h *InputHandler) printState() {
	snap := h.session.Snapshot()

	if len(snap.Suggestions) > 0 {
		h.out.Printf("Suggestions for '%s':", snap.Query)
		for i, sug := range snap.Suggestions {
			switch sug.Kind {
			case search.KindName:
				h.out.Printf("%2d. %s", i+1, h.nameStyle.Render(sug.Value))
			case search.KindTag:
				h.out.Printf("%2d. %s %s", i+1, h.tagStyle.Render(sug.Value), h.dimStyle.Render("(tag)"))
			}
		}
	}
	if len(snap.Selected) > 0 {
		h.out.Printf("Selected: %s", strings.Join(snap.Selected, ", "))
	}

	if snap.Empty {
		h.out.Warn("No restaurants found")
		return
	}
	h.out.Printf("Found %d restaurants:", len(snap.Results))
	for _, r := range snap.Results {
		h.out.Printf("  %s  %s  %s", h.nameStyle.Render(r.Name), r.Location, h.dimStyle.Render(strings.Join(r.Tags, " · ")))
		if h.opts.ShowDescriptions && r.Description != "" {
			h.out.Printf("      %s", r.Description)
		}
	}
}

func (h *InputHandler) printTags() {
	facet := h.session.Facet()
	selected := h.session.Selected()
	var b strings.Builder
	for i, tag := range h.session.BrowsableTags() {
		if i > 0 {
			b.WriteString("  ")
		}
		if selected.Has(tag) {
			b.WriteString(h.tagStyle.Render("[" + tag + "]"))
		} else {
			b.WriteString(tag)
		}
	}
	h.out.Printf("%s tags: %s", facet.Label(), b.String())
}

func (h *InputHandler) printFeed() {
	if len(h.sections) == 0 {
		h.out.Warn("Home feed is empty")
		return
	}
	for _, sec := range h.sections {
		h.out.Print(h.nameStyle.Render(sec.Title))
		for _, r := range sec.Records {
			line := fmt.Sprintf("  %s  ★ %.1f  %s  %s", r.Name, r.Rating, r.DeliveryTime, r.Location)
			if r.Deal != "" {
				line += "  " + h.tagStyle.Render(r.Deal)
			}
			h.out.Print(line)
		}
	}
}
