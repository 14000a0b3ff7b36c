// Package inspect implements an interactive line-edited REPL over an
// already-elaborated *design.Block hierarchy (spec.md's CLI "inspect"
// subcommand), modeled on the teacher's internal/repl: a liner.Liner
// session with fatih/color output and a ":"-prefixed command set, but
// walking a static tree instead of evaluating expressions.
package inspect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/sunholo/vhdlelab/internal/design"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Session is one inspect REPL, positioned at a current block within the
// elaborated tree rooted at Root.
type Session struct {
	Root    *design.Block
	current *design.Block
	path    []*design.Block // ancestry from Root to current, inclusive
}

// New creates a Session rooted at (and initially positioned on) root.
func New(root *design.Block) *Session {
	return &Session{Root: root, current: root, path: []*design.Block{root}}
}

// Start runs the REPL loop until :quit or EOF, reading commands from a
// liner-backed prompt and writing output to out.
func (s *Session) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".elabctl_inspect_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(in string) (c []string) {
		if strings.HasPrefix(in, ":") {
			for _, cmd := range []string{":help", ":quit", ":ls", ":cd", ":pwd", ":ports", ":genmaps", ":decls", ":stmts", ":tree"} {
				if strings.HasPrefix(cmd, in) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	fmt.Fprintf(out, "%s\n", bold("elabctl inspect"))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))

	for {
		input, err := line.Prompt(s.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		s.handle(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (s *Session) prompt() string {
	return fmt.Sprintf("%s> ", cyan(s.current.Dotted))
}

func (s *Session) handle(cmd string, out io.Writer) {
	parts := strings.Fields(cmd)
	switch parts[0] {
	case ":help", ":h":
		s.printHelp(out)
	case ":pwd":
		fmt.Fprintln(out, s.current.Dotted)
	case ":ls":
		s.list(out)
	case ":cd":
		if len(parts) < 2 {
			fmt.Fprintln(out, "Usage: :cd <label|..>")
			return
		}
		s.cd(parts[1], out)
	case ":ports":
		s.showPorts(out)
	case ":genmaps":
		s.showGenmaps(out)
	case ":decls":
		fmt.Fprintf(out, "%d declaration(s)\n", len(s.current.Decls))
	case ":stmts":
		fmt.Fprintf(out, "%d statement(s)\n", len(s.current.Stmts))
	case ":tree":
		s.printTree(out, s.current, "")
	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("Error"), parts[0])
	}
}

func (s *Session) printHelp(out io.Writer) {
	fmt.Fprintln(out, "  :ls              list child blocks")
	fmt.Fprintln(out, "  :cd <label|..>   descend into a child, or .. to go up")
	fmt.Fprintln(out, "  :pwd             print the current block's dotted path")
	fmt.Fprintln(out, "  :ports           list the current block's ports")
	fmt.Fprintln(out, "  :genmaps         list the current block's resolved generics")
	fmt.Fprintln(out, "  :decls           count declarations in the current block")
	fmt.Fprintln(out, "  :stmts           count statements in the current block")
	fmt.Fprintln(out, "  :tree            print the subtree rooted at the current block")
	fmt.Fprintln(out, "  :quit            exit")
}

func (s *Session) list(out io.Writer) {
	if len(s.current.Children) == 0 {
		fmt.Fprintln(out, dim("(no children)"))
		return
	}
	names := make([]string, len(s.current.Children))
	for i, c := range s.current.Children {
		names[i] = c.Name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
}

func (s *Session) cd(label string, out io.Writer) {
	if label == ".." {
		if len(s.path) == 1 {
			fmt.Fprintln(out, yellow("already at root"))
			return
		}
		s.path = s.path[:len(s.path)-1]
		s.current = s.path[len(s.path)-1]
		return
	}
	for _, c := range s.current.Children {
		if c.Name == label || c.InstName == label {
			s.current = c
			s.path = append(s.path, c)
			return
		}
	}
	fmt.Fprintf(out, "%s: no child block named %q\n", red("Error"), label)
}

func (s *Session) showPorts(out io.Writer) {
	if len(s.current.Ports) == 0 {
		fmt.Fprintln(out, dim("(no ports)"))
		return
	}
	for i, p := range s.current.Ports {
		val := "?"
		if i < len(s.current.Params) {
			val = s.current.Params[i].Value.String()
		}
		fmt.Fprintf(out, "%-16s %-4s %-16s => %s\n", p.Name, dirString(p.Dir), p.Typ.String(), val)
	}
}

func dirString(d design.Direction) string {
	switch d {
	case design.DirIn:
		return "in"
	case design.DirOut:
		return "out"
	case design.DirInout:
		return "inout"
	default:
		return "?"
	}
}

func (s *Session) showGenmaps(out io.Writer) {
	if len(s.current.Genmaps) == 0 {
		fmt.Fprintln(out, dim("(no generics)"))
		return
	}
	for _, g := range s.current.Genmaps {
		fmt.Fprintf(out, "%v\n", g.Value)
	}
}

func (s *Session) printTree(out io.Writer, b *design.Block, prefix string) {
	fmt.Fprintln(out, prefix+b.Name)
	for _, c := range b.Children {
		s.printTree(out, c, prefix+"  ")
	}
}

// PrintTree writes the indented block hierarchy rooted at b, for callers
// that want a one-shot dump without starting an interactive Session.
func PrintTree(out io.Writer, b *design.Block) {
	(&Session{}).printTree(out, b, "")
}
